package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

var emailExpr = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// ValidationError lists every failed field rule.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Problems, "; "))
}

// validator collects field problems through chained checks.
type validator struct {
	problems []string
}

func (v *validator) required(value, field string) *validator {
	if strings.TrimSpace(value) == "" {
		v.problems = append(v.problems, fmt.Sprintf("%s is required", field))
	}
	return v
}

func (v *validator) email(value, field string) *validator {
	value = strings.TrimSpace(value)
	if value != "" && !emailExpr.MatchString(strings.ToLower(value)) {
		v.problems = append(v.problems, fmt.Sprintf("%s must be a valid email address", field))
	}
	return v
}

func (v *validator) maxLength(value, field string, limit int) *validator {
	if len([]rune(value)) > limit {
		v.problems = append(v.problems, fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return v
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems}
}
