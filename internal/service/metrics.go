package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	topicsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boards_topics_created_total",
		Help: "Total number of topics created",
	})

	postsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boards_posts_created_total",
		Help: "Total number of posts created, opening posts included",
	})

	topicViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boards_topic_views_total",
			Help: "Topic page reads by outcome",
		},
		[]string{"outcome"}, // counted, duplicate, anonymous, tracker_error
	)
)
