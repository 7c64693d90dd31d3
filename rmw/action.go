package rmw

// Allocator is an opaque handle to a middleware memory allocator.
// It is never acquired or released by callers.
type Allocator struct {
	name string
}

// Name identifies the allocator.
func (a *Allocator) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}

// MarshalText implements encoding.TextMarshaler.
func (a *Allocator) MarshalText() ([]byte, error) {
	return []byte(a.Name()), nil
}

var defaultAllocator = &Allocator{name: "default"}

// DefaultAllocator returns the middleware's default allocator. Every call
// returns the same handle.
func DefaultAllocator() *Allocator {
	return defaultAllocator
}

// ActionServerOptions configures the services and topics an action server
// creates.
type ActionServerOptions struct {
	Allocator        *Allocator `json:"allocator" yaml:"allocator"`
	GoalServiceQoS   Profile    `json:"goal_service_qos" yaml:"goal_service_qos"`
	CancelServiceQoS Profile    `json:"cancel_service_qos" yaml:"cancel_service_qos"`
	ResultServiceQoS Profile    `json:"result_service_qos" yaml:"result_service_qos"`
	FeedbackTopicQoS Profile    `json:"feedback_topic_qos" yaml:"feedback_topic_qos"`
	StatusTopicQoS   Profile    `json:"status_topic_qos" yaml:"status_topic_qos"`
}

// ActionClientOptions configures the services and topics an action client
// creates. It has the same fields as ActionServerOptions and converts to it
// directly.
type ActionClientOptions struct {
	Allocator        *Allocator `json:"allocator" yaml:"allocator"`
	GoalServiceQoS   Profile    `json:"goal_service_qos" yaml:"goal_service_qos"`
	CancelServiceQoS Profile    `json:"cancel_service_qos" yaml:"cancel_service_qos"`
	ResultServiceQoS Profile    `json:"result_service_qos" yaml:"result_service_qos"`
	FeedbackTopicQoS Profile    `json:"feedback_topic_qos" yaml:"feedback_topic_qos"`
	StatusTopicQoS   Profile    `json:"status_topic_qos" yaml:"status_topic_qos"`
}
