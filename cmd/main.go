package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"movie-awards/handler"
	"movie-awards/internal/config"
	"movie-awards/internal/integrations/paramstore"
	"movie-awards/internal/repository"
	"movie-awards/internal/usecase"
)

func main() {
	ctx := context.Background()

	// ---- Configuration (read only here) ----
	appCfg, err := config.Load(os.Getenv)
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(appCfg.NewLogger(os.Stdout))

	// ---- AWS SDK config ----
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(appCfg.Region))
	if err != nil {
		slog.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	ssmClient, err := paramstore.New(awsssm.NewFromConfig(cfg))
	if err != nil {
		slog.Error("failed to create SSM client", "err", err)
		os.Exit(1)
	}
	tableName, err := paramstore.ResolveTableName(ctx, ssmClient, appCfg.TableName, appCfg.TableParam)
	if err != nil {
		slog.Error("failed to resolve awards table name", "err", err)
		os.Exit(1)
	}

	// One DynamoDB client per process, shared by every invocation.
	dynamoClient := awsdynamodb.NewFromConfig(cfg)
	awardsClient, err := repository.New(dynamoClient, tableName)
	if err != nil {
		slog.Error("failed to create awards client", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	awardService, err := usecase.NewAwardService(awardsClient)
	if err != nil {
		slog.Error("failed to create award service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(awardService)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	slog.Info("movie awards handler ready", "table", awardsClient.TableName(), "region", appCfg.Region)
	lambda.Start(h.Handle)
}
