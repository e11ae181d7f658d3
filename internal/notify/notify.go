package notify

import (
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/remnd/remnd/internal/schedule"
)

// Notifier delivers a decided alert to the user. Delivery is best effort:
// a failed send is reported but never retried here.
type Notifier interface {
	Send(a schedule.Notification) error
}

// New returns a desktop notifier when notify-send is available on PATH,
// otherwise a fallback that writes one line per alert to w.
func New(w io.Writer) Notifier {
	if bin, err := exec.LookPath("notify-send"); err == nil {
		return &sendNotifier{bin: bin}
	}
	return &writerNotifier{w: w}
}

type sendNotifier struct {
	bin string
}

func (n *sendNotifier) Send(a schedule.Notification) error {
	out, err := exec.Command(n.bin, sendArgs(a)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("notify-send failed: %w: %s", err, out)
	}
	return nil
}

// sendArgs builds the notify-send argument list for an alert. The dedup key
// is passed as the x-canonical-private-synchronous hint, which makes the
// notification daemon replace an earlier toast with the same key.
func sendArgs(a schedule.Notification) []string {
	args := []string{"-a", "remnd", "-u", string(a.Urgency)}
	if a.Icon != "" {
		args = append(args, "-i", a.Icon)
	}
	if a.Expire > 0 {
		args = append(args, "-t", strconv.FormatInt(a.Expire.Milliseconds(), 10))
	}
	if a.DedupKey != "" {
		args = append(args, "-h", "string:x-canonical-private-synchronous:"+a.DedupKey)
	}
	args = append(args, a.Title)
	if a.Body != "" {
		args = append(args, a.Body)
	}
	return args
}

type writerNotifier struct {
	w io.Writer
}

func (n *writerNotifier) Send(a schedule.Notification) error {
	if _, err := fmt.Fprintf(n.w, "[%s] %s: %s\n", a.Urgency, a.Title, a.Body); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	return nil
}
