package duaqos

import "github.com/gonzalop/duaqos/rmw"

// ActionServerOptions returns the settings action servers should be created
// with: the default allocator, the middleware's service default for the goal,
// cancel and result services, its topic default for feedback, and the topic
// default with transient-local durability for status, so observers that
// join late still learn the last known goal states.
func ActionServerOptions() rmw.ActionServerOptions {
	return rmw.ActionServerOptions{
		Allocator:        rmw.DefaultAllocator(),
		GoalServiceQoS:   rmw.ServicesDefaultProfile(),
		CancelServiceQoS: rmw.ServicesDefaultProfile(),
		ResultServiceQoS: rmw.ServicesDefaultProfile(),
		FeedbackTopicQoS: rmw.DefaultProfile(),
		StatusTopicQoS:   rmw.DefaultProfile().TransientLocal(),
	}
}

// ActionClientOptions returns the settings action clients should be created
// with. They match ActionServerOptions field for field.
func ActionClientOptions() rmw.ActionClientOptions {
	return rmw.ActionClientOptions(ActionServerOptions())
}
