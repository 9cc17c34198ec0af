package kafka

import (
	"context"

	"github.com/adiwijaya/ac-maintenance-service/config"
	"github.com/segmentio/kafka-go"
)

// Producer is the subset of *kafka.Conn the services write through.
type Producer interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
}

func CreateKafkaProducer(config *config.Config) Producer {
	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	return conn
}
