package callbacks

import (
	"github.com/gokeras/gokeras/pkg/params"
)

// RemoteMonitor proxies the library callback that streams epoch events to a
// server. The root URL, path, and headers are forwarded verbatim; the
// library performs the requests.
type RemoteMonitor struct {
	Callback

	root       string
	path       string
	field      string
	headers    map[string]string
	sendAsJSON bool
}

// RemoteMonitorOption configures a RemoteMonitor proxy.
type RemoteMonitorOption func(*RemoteMonitor)

// WithRMRoot sets the root URL of the target server.
func WithRMRoot(root string) RemoteMonitorOption {
	return func(rm *RemoteMonitor) {
		rm.root = root
	}
}

// WithRMPath sets the path relative to the root the events are posted to.
func WithRMPath(path string) RemoteMonitorOption {
	return func(rm *RemoteMonitor) {
		rm.path = path
	}
}

// WithRMField sets the form field the event data is submitted under.
func WithRMField(field string) RemoteMonitorOption {
	return func(rm *RemoteMonitor) {
		rm.field = field
	}
}

// WithRMHeaders sets additional HTTP headers sent with every request.
func WithRMHeaders(headers map[string]string) RemoteMonitorOption {
	return func(rm *RemoteMonitor) {
		rm.headers = headers
	}
}

// WithRMSendAsJSON posts the event as application/json instead of form data.
func WithRMSendAsJSON(sendAsJSON bool) RemoteMonitorOption {
	return func(rm *RemoteMonitor) {
		rm.sendAsJSON = sendAsJSON
	}
}

// NewRemoteMonitor constructs the library-side RemoteMonitor callback.
func NewRemoteMonitor(options ...RemoteMonitorOption) (*RemoteMonitor, error) {
	rm := &RemoteMonitor{
		root:  "http://localhost:9000",
		path:  "/publish/epoch/end/",
		field: "data",
	}
	for _, opt := range options {
		opt(rm)
	}

	bag := params.NewBag().
		Set("root", rm.root).
		Set("path", rm.path).
		Set("field", rm.field)
	if rm.headers == nil {
		bag.Set("headers", nil)
	} else {
		bag.Set("headers", rm.headers)
	}
	bag.Set("send_as_json", rm.sendAsJSON)

	if err := rm.build("RemoteMonitor", bag); err != nil {
		return nil, err
	}
	return rm, nil
}
