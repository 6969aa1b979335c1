// Package lessons reads, renders and writes the Markdown lesson documents
// that accompany the curriculum. Filenames are validated before touching the
// filesystem; nothing outside the lesson directory is ever read or written.
package lessons

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/toc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Info is one entry of the hand-maintained lesson manifest.
type Info struct {
	File  string `json:"file"`
	Title string `json:"title"`
	Week  int    `json:"week"`
}

// Manifest lists the lesson documents in reading order. It is maintained by
// hand, not discovered from the directory.
var Manifest = []Info{
	{File: "week1-typescript-basics.md", Title: "TypeScript Basics for DSA", Week: 1},
	{File: "week2-prefix-sums.md", Title: "Counting & Prefix Sums", Week: 2},
	{File: "week3-sorting-greedy.md", Title: "Sorting & Greedy Patterns", Week: 3},
	{File: "week4-stacks-leaders.md", Title: "Stacks, Fish & Leaders", Week: 4},
	{File: "week5-max-slices.md", Title: "Maximum Slices & DP", Week: 5},
	{File: "week6-binary-search-sieve.md", Title: "Binary Search, Peaks & Sieve", Week: 6},
}

var (
	ErrNotFound    = errors.New("lesson not found")
	ErrInvalidName = errors.New("invalid lesson filename")
)

// Rendered is a lesson converted to HTML, with navigation relative to the
// manifest order.
type Rendered struct {
	File  string `json:"file"`
	Title string `json:"title"`
	HTML  string `json:"html"`
	TOC   string `json:"toc"`
	Prev  *Info  `json:"prev"`
	Next  *Info  `json:"next"`
}

type Service struct {
	Dir string
	md  goldmark.Markdown
}

func NewService(dir string) *Service {
	return &Service{
		Dir: dir,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// List returns the manifest.
func (s *Service) List() []Info {
	return Manifest
}

// ValidName reports whether file is a plain Markdown filename: no path
// separators, no parent-directory segments, and the .md extension.
func ValidName(file string) bool {
	if file == "" || !strings.HasSuffix(file, ".md") {
		return false
	}
	if strings.Contains(file, "..") || strings.ContainsAny(file, "/\\") {
		return false
	}
	return true
}

// Read returns the raw Markdown content of a lesson. ErrInvalidName is
// returned for unsafe names, ErrNotFound when the file does not resolve to a
// regular file inside the lesson directory.
func (s *Service) Read(file string) (string, error) {
	if !ValidName(file) {
		return "", ErrInvalidName
	}

	path := filepath.Join(s.Dir, file)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrNotFound
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Write overwrites a lesson's full content. The same name validation applies;
// there is no versioning or backup.
func (s *Service) Write(file string, content string) error {
	if !ValidName(file) {
		return ErrInvalidName
	}
	return os.WriteFile(filepath.Join(s.Dir, file), []byte(content), 0644)
}

// Render converts a lesson to HTML with a table of contents. The title comes
// from the first level-1 heading, falling back to a title-cased form of the
// filename. Prev/next navigation follows the manifest order.
func (s *Service) Render(file string) (*Rendered, error) {
	content, err := s.Read(file)
	if err != nil {
		return nil, err
	}

	src := []byte(content)
	doc := s.md.Parser().Parse(text.NewReader(src))

	var htmlBuf bytes.Buffer
	if err := s.md.Renderer().Render(&htmlBuf, src, doc); err != nil {
		return nil, err
	}

	var tocBuf bytes.Buffer
	if tree, err := toc.Inspect(doc, src); err == nil {
		if list := toc.RenderList(tree); list != nil {
			if err := s.md.Renderer().Render(&tocBuf, src, list); err != nil {
				return nil, err
			}
		}
	}

	title := docTitle(doc, src)
	if title == "" {
		title = titleFromFilename(file)
	}

	rendered := &Rendered{
		File:  file,
		Title: title,
		HTML:  htmlBuf.String(),
		TOC:   tocBuf.String(),
	}
	rendered.Prev, rendered.Next = neighbors(file)
	return rendered, nil
}

func docTitle(doc ast.Node, src []byte) string {
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			return string(h.Text(src))
		}
	}
	return ""
}

func titleFromFilename(file string) string {
	name := strings.TrimSuffix(file, ".md")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(name)
}

func neighbors(file string) (prev, next *Info) {
	for i := range Manifest {
		if Manifest[i].File != file {
			continue
		}
		if i > 0 {
			prev = &Manifest[i-1]
		}
		if i < len(Manifest)-1 {
			next = &Manifest[i+1]
		}
		return prev, next
	}
	return nil, nil
}
