package editor

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Recovery copies are written only when saving to the real file fails, so
// the in-memory text survives even if the session is then abandoned.

type recoveryInfo struct {
	OriginalPath string `json:"original_path"`
	Timestamp    string `json:"timestamp"`
}

func recoveryDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "pocketedit", "recovery")
}

func recoveryPathForFile(dir, originalPath string) string {
	abs, err := filepath.Abs(originalPath)
	if err != nil {
		abs = originalPath
	}
	h := sha256.Sum256([]byte(abs))
	name := fmt.Sprintf("%s-%x.txt", filepath.Base(originalPath), h[:8])
	return filepath.Join(dir, name)
}

func recoveryMetaPath(copyPath string) string {
	return copyPath + ".json"
}

// writeRecovery stores content for originalPath and returns where it went.
// An empty dir disables recovery and returns "".
func writeRecovery(dir, originalPath, content string) (string, error) {
	if dir == "" {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	copyPath := recoveryPathForFile(dir, originalPath)
	if err := os.WriteFile(copyPath, []byte(content), 0644); err != nil {
		return "", err
	}
	meta := recoveryInfo{
		OriginalPath: originalPath,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return copyPath, nil
	}
	_ = os.WriteFile(recoveryMetaPath(copyPath), data, 0644)
	return copyPath, nil
}

func removeRecovery(dir, originalPath string) {
	if dir == "" {
		return
	}
	copyPath := recoveryPathForFile(dir, originalPath)
	os.Remove(copyPath)
	os.Remove(recoveryMetaPath(copyPath))
}

// findRecovery returns the recovery copy left for originalPath by an earlier
// failed save, if any.
func findRecovery(dir, originalPath string) (string, bool) {
	if dir == "" {
		return "", false
	}
	copyPath := recoveryPathForFile(dir, originalPath)
	data, err := os.ReadFile(recoveryMetaPath(copyPath))
	if err != nil {
		return "", false
	}
	var info recoveryInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return "", false
	}
	if _, err := os.Stat(copyPath); err != nil {
		return "", false
	}
	return copyPath, true
}
