package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/kayaomerr/ytsummarizer/bridge"
)

// successCloseDelayMS is how long the relay page waits before closing
// itself after posting an auth-success message, so the message is
// flushed to the opener before teardown. Error pages close immediately.
const successCloseDelayMS = 500

// relayPageTemplate is the HTML document the callback returns. Its
// sole purpose is to deliver exactly one bridge message to the window
// that opened the authorization window, then close itself.
var relayPageTemplate = template.Must(template.New("relay").Parse(`<!DOCTYPE html>
<html>
  <body>
    <script>
      const payload = {{.Payload}};

      if (window.opener) {
        window.opener.postMessage(payload, '*');
        {{if .Delay}}setTimeout(() => window.close(), {{.Delay}});{{else}}window.close();{{end}}
      }
    </script>
  </body>
</html>
`))

type relayPageData struct {
	Payload template.JS
	Delay   int
}

// renderRelayPage writes the relay document for one terminal message.
func renderRelayPage(w http.ResponseWriter, msg bridge.Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("[renderRelayPage] encode message: %w", err)
	}

	delay := 0
	if msg.Kind == bridge.KindAuthSuccess {
		delay = successCloseDelayMS
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	return relayPageTemplate.Execute(w, relayPageData{
		Payload: template.JS(raw),
		Delay:   delay,
	})
}
