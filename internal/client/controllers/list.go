package controllers

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hrverify/internal/client/client"
)

var (
	ErrCancelled  = errors.New("cancelled")
	ErrNotFound   = errors.New("not found in the current list")
	ErrNoMatches  = errors.New("no rows matched")
	ErrNoValidRow = errors.New("no row has both name and email")
)

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// List is the view state of one fetched collection.
type List[T any] struct {
	Items   []T
	Loading bool
	Err     string
}

// Load replaces Items with the result of fetch. On failure Items is emptied.
func (l *List[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	l.Loading = true
	defer func() { l.Loading = false }()

	items, err := fetch(ctx)
	if err != nil {
		l.Items = nil
		l.Err = client.Message(err)
		return err
	}
	l.Items = items
	l.Err = ""
	return nil
}

func (l *List[T]) Append(items ...T) {
	l.Items = append(l.Items, items...)
}

// Remove drops every item matching and returns how many were dropped.
func (l *List[T]) Remove(match func(T) bool) int {
	kept := l.Items[:0]
	n := 0
	for _, it := range l.Items {
		if match(it) {
			n++
			continue
		}
		kept = append(kept, it)
	}
	clear(l.Items[len(kept):])
	l.Items = kept
	return n
}

// Replace swaps the first matching item for item.
func (l *List[T]) Replace(match func(T) bool, item T) bool {
	for i, it := range l.Items {
		if match(it) {
			l.Items[i] = item
			return true
		}
	}
	return false
}

// Find returns the first matching item.
func (l *List[T]) Find(match func(T) bool) (T, bool) {
	for _, it := range l.Items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the matching items without changing the list.
func (l *List[T]) Filter(keep func(T) bool) []T {
	var out []T
	for _, it := range l.Items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func confirm(c Confirmer, prompt string) error {
	if c != nil && !c.Confirm(prompt) {
		return ErrCancelled
	}
	return nil
}
