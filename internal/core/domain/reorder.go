package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Reorder relocates the package-group entries of seq so that they form a contiguous block
// immediately before the first test-group entry, and returns a copy of the original order.
//
// The sequence is left untouched when it has no test-group entry, no package-group entry, or
// when every package-group entry already precedes the first test-group entry. Reorder is
// therefore idempotent and only ever permutes seq.
func Reorder[T any](seq []T, phaseOf func(T) string, strict bool) []T {
	snapshot := slices.Clone(seq)

	firstTest := -1
	var packages []int
	for i, item := range seq {
		phase := phaseOf(item)
		if firstTest < 0 && IsTestPhase(phase, strict) {
			firstTest = i
		}
		if IsPackagePhase(phase) {
			packages = append(packages, i)
		}
	}

	if firstTest < 0 || len(packages) == 0 || packages[len(packages)-1] < firstTest {
		return snapshot
	}

	block := make([]T, 0, len(packages))
	rest := make([]T, 0, len(seq)-len(packages))
	insertAt := firstTest
	next := 0
	for i, item := range seq {
		if next < len(packages) && packages[next] == i {
			block = append(block, item)
			next++
			if i < firstTest {
				insertAt--
			}
			continue
		}
		rest = append(rest, item)
	}

	n := copy(seq, rest[:insertAt])
	n += copy(seq[n:], block)
	copy(seq[n:], rest[insertAt:])

	return snapshot
}

// Restore overwrites target position by position with the order recorded in original.
func Restore[T any](original, target []T) error {
	if len(original) != len(target) {
		err := zerr.Wrap(ErrSnapshotLengthMismatch, "cannot restore original order")
		err = zerr.With(err, "snapshot_len", len(original))
		return zerr.With(err, "target_len", len(target))
	}
	copy(target, original)
	return nil
}
