// Package bridge defines the message contract between the transient
// authorization window and the page that opened it. Exactly one message
// is meaningful per authorization attempt; everything else arriving on
// the shared channel is noise and must be ignored.
package bridge

import (
	"encoding/json"

	"github.com/kayaomerr/ytsummarizer/youtube"
)

// Message kinds. The kind field is the discriminator of the tagged
// union; a payload with any other kind is not a bridge message.
const (
	KindAuthSuccess = "auth-success"
	KindAuthError   = "auth-error"
)

// Message is the single structured payload exchanged once per
// authorization attempt.
type Message struct {
	Kind        string             `json:"kind"`
	AccessToken string             `json:"accessToken,omitempty"`
	Playlists   []youtube.Playlist `json:"playlists,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// Success builds a terminal auth-success message.
func Success(accessToken string, playlists []youtube.Playlist) Message {
	return Message{
		Kind:        KindAuthSuccess,
		AccessToken: accessToken,
		Playlists:   playlists,
	}
}

// Failure builds a terminal auth-error message.
func Failure(reason string) Message {
	return Message{Kind: KindAuthError, Error: reason}
}

// Terminal reports whether the message ends an authorization attempt.
// Both valid kinds are terminal; the distinction exists so a future
// progress kind can be added without changing consumers.
func (m Message) Terminal() bool {
	return m.Kind == KindAuthSuccess || m.Kind == KindAuthError
}

// Decode parses an untrusted payload from the shared channel. The
// second return value is false when the payload is not a well-formed
// bridge message: not JSON, an unknown kind, an auth-success without a
// token, or an auth-error without a reason. Such payloads are ignored
// by callers, not treated as errors, because the channel is shared
// with unrelated traffic.
func Decode(raw []byte) (Message, bool) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Message{}, false
	}

	switch msg.Kind {
	case KindAuthSuccess:
		if msg.AccessToken == "" {
			return Message{}, false
		}
	case KindAuthError:
		if msg.Error == "" {
			return Message{}, false
		}
	default:
		return Message{}, false
	}

	// An auth-error never carries session data.
	if msg.Kind == KindAuthError {
		msg.AccessToken = ""
		msg.Playlists = nil
	}
	return msg, true
}
