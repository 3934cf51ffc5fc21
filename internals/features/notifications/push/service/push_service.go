// file: internals/features/notifications/push/service/push_service.go
package service

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"orquestra_backend/internals/configs"
)

// Expo caps each push request at 100 messages.
const expoBatchSize = 100

var httpClient = &http.Client{Timeout: 10 * time.Second}

type ExpoMessage struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Sound string            `json:"sound,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// SendToTokens fans the notification out to the Expo push gateway in batches.
// A failed batch is logged and skipped, the rest still goes out.
func SendToTokens(tokens []string, title, body string, data map[string]string) error {
	if len(tokens) == 0 {
		return nil
	}

	var lastErr error
	for start := 0; start < len(tokens); start += expoBatchSize {
		end := start + expoBatchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		msg := ExpoMessage{
			To:    tokens[start:end],
			Title: title,
			Body:  body,
			Sound: "default",
			Data:  data,
		}
		if err := postBatch(msg); err != nil {
			log.Printf("[ERROR] push batch %d-%d failed: %v", start, end, err)
			lastErr = err
		}
	}
	return lastErr
}

func postBatch(msg ExpoMessage) error {
	payload, err := sonic.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, configs.PushGatewayURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway answered %d", resp.StatusCode)
	}
	return nil
}

// CollectAllTokens gathers every registered device token of active members.
func CollectAllTokens(db *gorm.DB) ([]string, error) {
	var tokens []string
	err := db.Table("profiles").
		Joins("JOIN users ON users.id = profiles.user_id AND users.deleted_at IS NULL AND users.status = 'ativo'").
		Where("profiles.push_token IS NOT NULL AND profiles.push_token <> ''").
		Pluck("profiles.push_token", &tokens).Error
	return tokens, err
}

// Broadcast pushes the notification to every registered device.
func Broadcast(db *gorm.DB, title, body string, data map[string]string) error {
	tokens, err := CollectAllTokens(db)
	if err != nil {
		return err
	}
	log.Printf("[INFO] broadcasting push to %d devices", len(tokens))
	return SendToTokens(tokens, title, body, data)
}
