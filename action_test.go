package duaqos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonzalop/duaqos/rmw"
)

func TestActionOptions(t *testing.T) {
	server := ActionServerOptions()
	client := ActionClientOptions()

	assert.Equal(t, server, rmw.ActionServerOptions(client))
	assert.Same(t, rmw.DefaultAllocator(), server.Allocator)

	assert.Equal(t, rmw.ServicesDefaultProfile(), server.GoalServiceQoS)
	assert.Equal(t, rmw.ServicesDefaultProfile(), server.CancelServiceQoS)
	assert.Equal(t, rmw.ServicesDefaultProfile(), server.ResultServiceQoS)
	assert.Equal(t, rmw.DefaultProfile(), server.FeedbackTopicQoS)

	assert.Equal(t, rmw.DurabilityTransientLocal, server.StatusTopicQoS.Durability)
	assert.Equal(t, rmw.DurabilityTransientLocal, client.StatusTopicQoS.Durability)
	assert.Equal(t, rmw.DefaultProfile().TransientLocal(), server.StatusTopicQoS)
}

func TestActionOptionsIndependent(t *testing.T) {
	a := ActionServerOptions()
	b := ActionServerOptions()
	a.StatusTopicQoS = a.StatusTopicQoS.DurabilityVolatile()

	assert.Equal(t, rmw.DurabilityTransientLocal, b.StatusTopicQoS.Durability)
	assert.Equal(t, rmw.DurabilityTransientLocal, ActionClientOptions().StatusTopicQoS.Durability)
}
