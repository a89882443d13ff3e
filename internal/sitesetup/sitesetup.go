// Package sitesetup personalizes a checkout of the portfolio website by
// replacing the template's placeholder strings with the owner's details.
package sitesetup

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Answers holds the owner's details. Blank fields fall back to the template placeholder.
type Answers struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	GitHub   string `json:"github"`
}

// Template placeholders as they appear in the website sources
const (
	PlaceholderName     = "Your Name"
	PlaceholderTitle    = "Full-Stack Developer & Designer"
	PlaceholderEmail    = "your.email@example.com"
	PlaceholderPhone    = "+1 (555) 123-4567"
	PlaceholderLocation = "San Francisco, CA"
	PlaceholderGitHub   = "yourusername"
)

// DefaultAnswers returns the placeholders themselves, which leave files unchanged
func DefaultAnswers() Answers {
	return Answers{
		Name:     PlaceholderName,
		Title:    PlaceholderTitle,
		Email:    PlaceholderEmail,
		Phone:    PlaceholderPhone,
		Location: PlaceholderLocation,
		GitHub:   PlaceholderGitHub,
	}
}

// WithDefaults trims every answer and replaces blanks with the placeholder
func (a Answers) WithDefaults() Answers {
	def := DefaultAnswers()
	pick := func(v, fallback string) string {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
		return fallback
	}
	return Answers{
		Name:     pick(a.Name, def.Name),
		Title:    pick(a.Title, def.Title),
		Email:    pick(a.Email, def.Email),
		Phone:    pick(a.Phone, def.Phone),
		Location: pick(a.Location, def.Location),
		GitHub:   pick(a.GitHub, def.GitHub),
	}
}

// field selects one answer
type field func(Answers) string

func name(a Answers) string     { return a.Name }
func title(a Answers) string    { return a.Title }
func email(a Answers) string    { return a.Email }
func phone(a Answers) string    { return a.Phone }
func location(a Answers) string { return a.Location }
func github(a Answers) string   { return a.GitHub }

// Replacement swaps every occurrence of Placeholder for the selected answer
type Replacement struct {
	Placeholder string
	Value       field
}

// FileRule lists the replacements applied to one file, relative to the site root
type FileRule struct {
	Path         string
	Replacements []Replacement
}

// Rules returns the files touched by setup, in processing order
func Rules() []FileRule {
	return []FileRule{
		{Path: "src/pages/Home.jsx", Replacements: []Replacement{
			{PlaceholderName, name},
			{PlaceholderTitle, title},
		}},
		{Path: "src/pages/About.jsx", Replacements: []Replacement{
			{PlaceholderGitHub, github},
		}},
		{Path: "src/pages/Contact.jsx", Replacements: []Replacement{
			{PlaceholderEmail, email},
			{PlaceholderPhone, phone},
			{PlaceholderLocation, location},
			{PlaceholderGitHub, github},
		}},
		{Path: "src/components/Footer.jsx", Replacements: []Replacement{
			{PlaceholderGitHub, github},
			{PlaceholderEmail, email},
		}},
		{Path: "src/pages/Privacy.jsx", Replacements: []Replacement{
			{PlaceholderEmail, email},
			{PlaceholderLocation, location},
		}},
		{Path: "index.html", Replacements: []Replacement{
			{PlaceholderName, name},
		}},
	}
}

// File outcomes
const (
	StatusUpdated   = "updated"
	StatusUnchanged = "unchanged"
	StatusMissing   = "missing"
)

// Result reports what happened to one file
type Result struct {
	Path         string `json:"path"`
	Status       string `json:"status"`
	Replacements int    `json:"replacements"`
}

// ErrNotDirectory is returned when the site root is not a directory
var ErrNotDirectory = errors.New("site root is not a directory")

// Apply rewrites the placeholder strings under root.
// Missing files are reported and skipped; any other I/O error stops the run.
func Apply(root string, answers Answers) ([]Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("site root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	answers = answers.WithDefaults()
	rules := Rules()
	results := make([]Result, 0, len(rules))

	for _, rule := range rules {
		res, err := applyRule(root, rule, answers)
		if err != nil {
			return results, err
		}
		slog.Info("setup processed file", "path", res.Path, "status", res.Status, "replacements", res.Replacements)
		results = append(results, res)
	}
	return results, nil
}

func applyRule(root string, rule FileRule, answers Answers) (Result, error) {
	res := Result{Path: rule.Path}
	path := filepath.Join(root, filepath.FromSlash(rule.Path))

	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		res.Status = StatusMissing
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("read %s: %w", rule.Path, err)
	}

	updated := string(content)
	for _, r := range rule.Replacements {
		value := r.Value(answers)
		if value == r.Placeholder {
			continue
		}
		res.Replacements += strings.Count(updated, r.Placeholder)
		updated = strings.ReplaceAll(updated, r.Placeholder, value)
	}

	if updated == string(content) {
		res.Status = StatusUnchanged
		return res, nil
	}

	if err := atomicWriteFile(path, []byte(updated)); err != nil {
		return res, fmt.Errorf("write %s: %w", rule.Path, err)
	}
	res.Status = StatusUpdated
	return res, nil
}

// atomicWriteFile writes data next to path and renames it into place,
// keeping the original file mode
func atomicWriteFile(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
