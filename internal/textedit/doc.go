// Package textedit implements selection-aware text mutations: applying and
// toggling formatting around a selection, multiline prefixing, and the pure
// metrics helpers hosts use for cursor display. Functions here never fail;
// stale selections are clamped into the current text bounds.
package textedit
