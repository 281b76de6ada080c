package message

import (
	"fmt"
	"time"
)

// Message bodies written by the job lifecycle operations. Timestamps use
// RFC 3339 in UTC.

func AcceptedBody(author string) string {
	return fmt.Sprintf("Accepted by %s", author)
}

func DropOffBody(author string, at time.Time) string {
	return fmt.Sprintf("%s %s at %s", DropOffMarker, author, at.UTC().Format(time.RFC3339))
}

func CollectedBody(author string, at time.Time) string {
	return fmt.Sprintf("Collected by %s at %s", author, at.UTC().Format(time.RFC3339))
}

func NoteBody(author, note string) string {
	return fmt.Sprintf("Note from %s: %s", author, note)
}

func OrderCancelledBody(author, reason string) string {
	return fmt.Sprintf("Order cancelled by %s. Reason: %s", author, reason)
}

func JobCancelledBody(author, reason string) string {
	return fmt.Sprintf("Job cancelled by %s. Reason: %s", author, reason)
}
