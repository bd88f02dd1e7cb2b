package ports

// MarkdownConverter turns a markdown snippet into an HTML fragment
type MarkdownConverter interface {
	ToHTML(source string) (string, error)
}
