package main

import (
	"context"
	"fmt"

	"github.com/adiwijaya/ac-maintenance-service/config"
	"github.com/adiwijaya/ac-maintenance-service/internal/app"
	"github.com/adiwijaya/ac-maintenance-service/internal/infrastructure/database/mongodb"
	"github.com/adiwijaya/ac-maintenance-service/internal/infrastructure/message-queue/kafka"
)

func main() {
	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort), conf.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}
	defer db.Client().Disconnect(context.Background())

	kafkaProducer := kafka.CreateKafkaProducer(conf)

	application := app.App{
		DB:            db,
		Config:        conf,
		KafkaProducer: kafkaProducer,
	}
	application.Start()
}
