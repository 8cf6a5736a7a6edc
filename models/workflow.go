package models

import (
	"fmt"
	"strings"
)

type WorkflowFile struct {
	Name    string
	Path    string
	Content string
}

type Repository struct {
	Owner string
	Name  string
}

// ParseRepository parses an "owner/name" string.
func ParseRepository(s string) (Repository, error) {
	owner, name, found := strings.Cut(strings.TrimSpace(s), "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repository{}, fmt.Errorf("invalid repository %q: expected owner/name", s)
	}
	return Repository{Owner: owner, Name: name}, nil
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}
