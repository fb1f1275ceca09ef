package utils

import (
	"strings"
	"timetable-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateClientID() string {
	return uuid.NewString()
}

// IsValidClientID accepts only UUIDs so client ids stay safe to embed in storage keys.
func IsValidClientID(clientID string) bool {
	_, err := uuid.Parse(clientID)
	return err == nil
}
