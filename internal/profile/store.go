// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taibuivan/biolink/internal/platform/constants"
)

// Blob keys shared by every store implementation.
const (
	usersKey   = constants.BlobUsers
	sessionKey = constants.BlobSession
)

// encodeDirectory serializes the users blob.
func encodeDirectory(directory *Directory) (string, error) {
	if directory == nil {
		directory = NewDirectory()
	}
	data, err := json.Marshal(directory)
	if err != nil {
		return "", fmt.Errorf("profile_directory_encode_failed: %w", err)
	}
	return string(data), nil
}

// decodeDirectory parses the users blob. A blank document is an empty directory.
func decodeDirectory(value string) (*Directory, error) {
	directory := NewDirectory()
	if strings.TrimSpace(value) == "" {
		return directory, nil
	}
	if err := json.Unmarshal([]byte(value), directory); err != nil {
		return nil, err
	}
	return directory, nil
}
