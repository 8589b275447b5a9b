// Package main is the Lambda entrypoint for the instance power controller.
//
// The function is invoked by a scheduled CloudWatch Events rule whose constant
// input carries the target instance and the requested action:
//
//	{"instance_id": "i-0abcd1234", "action": "start"}
//
// It returns {"statusCode": ..., "body": "..."} and never an error; every
// failure is folded into the response record.
//
// Environment:
//   AWS_REGION: region override for local runs (optional)
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/logger"
	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/scheduler"
	"github.com/iamkjn/WordPress-AWS-Serverless-Automation/services"
)

func main() {
	logger.Init()
	defer logger.Sync()

	cfg, err := services.LoadConfig()
	if err != nil {
		logger.Logger.Fatal("Failed to load config", zap.Error(err))
	}

	ec2Client, err := services.NewEC2Client(context.Background(), cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to create EC2 client", zap.Error(err))
	}

	handler := scheduler.NewHandler(ec2Client, logger.Logger)
	lambda.Start(handler.Handle)
}
