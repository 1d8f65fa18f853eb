package report

import "testing"

func TestTrackerCounts(t *testing.T) {
	tracker := NewTracker(false)

	tracker.MarkMigrated("1")
	tracker.MarkMigrated("2")
	tracker.MarkSkipped("3")
	tracker.MarkFailed("4")
	tracker.MarkFailed("5")

	if tracker.Migrated() != 2 {
		t.Errorf("Expected 2 migrated, got %d", tracker.Migrated())
	}
	if tracker.Skipped() != 1 {
		t.Errorf("Expected 1 skipped, got %d", tracker.Skipped())
	}

	failed := tracker.FailedPosts()
	if len(failed) != 2 || failed[0] != "4" || failed[1] != "5" {
		t.Errorf("Expected failed posts [4 5] in order, got %v", failed)
	}
}

func TestTrackerEmpty(t *testing.T) {
	tracker := NewTracker(true)

	if tracker.Migrated() != 0 || tracker.Skipped() != 0 || len(tracker.FailedPosts()) != 0 {
		t.Error("Expected zero counts for a fresh tracker")
	}

	// PrintSummary on an empty tracker must not panic.
	tracker.PrintSummary()
}
