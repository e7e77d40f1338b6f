// Package docs embeds the help topics served by `glb topic`.
//
// Each topic is a markdown file named after the topic; readme.md is the
// table of contents the command shows by default.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var topics embed.FS

// GetTopic returns the markdown content of one help topic.
func GetTopic(topic string) (string, error) {
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, available topics: %s", topic, strings.Join(allTopics(), ", "))
	}
	return string(content), nil
}

// GetTopics concatenates the content of several help topics, in the order
// they were asked for.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// allTopics lists the embedded topic names, sorted, readme excluded.
func allTopics() []string {
	entries, err := topics.ReadDir(".")
	if err != nil {
		// the embedded FS root always reads
		panic(err)
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
