package cli

import (
	"bufio"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	builtindocs "github.com/aidanlsb/cmdlint/docs"
	"github.com/aidanlsb/cmdlint/internal/ui"
)

type docsTopicView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

var docsCmd = &cobra.Command{
	Use:   "docs [topic]",
	Short: "Browse long-form documentation",
	Long: `Browse long-form documentation bundled into the cmdlint binary.

Examples:
  cmdlint docs
  cmdlint docs frontmatter
  cmdlint docs fixes`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := listDocsTopics()
		if err != nil {
			return handleError(ErrInternal, err, "Rebuild cmdlint so bundled docs are available")
		}

		if len(args) == 0 {
			return outputDocsTopics(topics)
		}

		topic, ok := findDocsTopic(topics, args[0])
		if !ok {
			available := make([]string, 0, len(topics))
			for _, t := range topics {
				available = append(available, t.ID)
			}
			return handleErrorMsg(
				ErrInvalidInput,
				fmt.Sprintf("unknown docs topic: %s", args[0]),
				fmt.Sprintf("Run 'cmdlint docs' to list topics (available: %s)", strings.Join(available, ", ")),
			)
		}

		return outputDocsTopicContent(topic)
	},
}

func outputDocsTopics(topics []docsTopicView) error {
	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"topics": topics,
		}, &Meta{Count: len(topics)})
		return nil
	}

	fmt.Println("Documentation topics:")
	for _, t := range topics {
		fmt.Printf("  %-32s %s\n", fmt.Sprintf("cmdlint docs %s", t.ID), t.Title)
	}
	return nil
}

func outputDocsTopicContent(topic docsTopicView) error {
	content, err := fs.ReadFile(builtindocs.FS, topic.Path)
	if err != nil {
		return handleError(ErrFileReadError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{
			"topic":   topic.ID,
			"title":   topic.Title,
			"content": string(content),
		}, nil)
		return nil
	}

	rendered := string(content)
	display := ui.NewDisplayContext()
	if display.IsTTY {
		if out, renderErr := ui.RenderMarkdown(string(content), display.TermWidth); renderErr == nil {
			rendered = out
		}
	}

	fmt.Print(rendered)
	if !strings.HasSuffix(rendered, "\n") {
		fmt.Println()
	}
	return nil
}

func listDocsTopics() ([]docsTopicView, error) {
	entries, err := fs.ReadDir(builtindocs.FS, "guide")
	if err != nil {
		return nil, fmt.Errorf("read bundled docs: %w", err)
	}

	topics := make([]docsTopicView, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".md")
		fsPath := path.Join("guide", e.Name())
		topics = append(topics, docsTopicView{
			ID:    id,
			Title: docsTopicTitle(fsPath, id),
			Path:  fsPath,
		})
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].ID < topics[j].ID })
	return topics, nil
}

func findDocsTopic(topics []docsTopicView, raw string) (docsTopicView, bool) {
	needle := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(raw, ".md")))
	for _, t := range topics {
		if t.ID == needle {
			return t, true
		}
	}
	return docsTopicView{}, false
}

// docsTopicTitle takes the first H1 heading, falling back to the slug.
func docsTopicTitle(fsPath, fallbackSlug string) string {
	f, err := builtindocs.FS.Open(fsPath)
	if err != nil {
		return titleFromSlug(fallbackSlug)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "# ") {
			if title := strings.TrimSpace(strings.TrimPrefix(line, "# ")); title != "" {
				return title
			}
		}
	}
	return titleFromSlug(fallbackSlug)
}

func titleFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
