package server

import (
	"bufio"
	"bytes"
	"crypto/md5"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/stoplight/internal/logging"
)

// isKeyAuthorized checks if the client's public key is in authorized_keys
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) bool {
	file, err := os.Open(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Failed to open authorized_keys", "error", err, "path", authorizedKeysPath)
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		authorizedKey, _, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Failed to parse authorized key line", "error", err)
			continue
		}

		if bytes.Equal(clientKey.Marshal(), authorizedKey.Marshal()) {
			return true
		}
	}

	if err := scanner.Err(); err != nil {
		logging.Logger.Error("Error reading authorized_keys", "error", err)
	}
	return false
}

// getKeyFingerprint returns the MD5 fingerprint of an SSH public key
// in the format "MD5:xx:xx:xx:..." for the audit log
func getKeyFingerprint(key ssh.PublicKey) string {
	hash := md5.Sum(key.Marshal())
	fingerprint := make([]string, len(hash))
	for i, b := range hash {
		fingerprint[i] = fmt.Sprintf("%02x", b)
	}
	return "MD5:" + strings.Join(fingerprint, ":")
}
