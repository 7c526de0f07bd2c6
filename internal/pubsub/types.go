package pubsub

import (
	"time"

	"cloud.google.com/go/pubsub"
)

const sendTimeout = 10 * time.Second

type client struct {
	client *pubsub.Client
}
