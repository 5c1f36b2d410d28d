package metrics

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	namespace                = "StarterPoem/API"
	cloudwatchTimeoutSeconds = 5
)

// metricPutter is the subset of the CloudWatch client we use
type metricPutter interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      metricPutter
	enabled     bool
	environment string
	// async sends metrics from a goroutine; tests turn it off
	async bool
}

// NewClient creates a new CloudWatch metrics client. It is a no-op unless
// enabled and running in production.
func NewClient(ctx context.Context, environment string, enabled bool) *Client {
	if !enabled || environment != "production" {
		log.Printf("📊 CloudWatch Metrics: DISABLED (environment: %s)", environment)
		return &Client{environment: environment}
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to load AWS config for CloudWatch: %v", err)
		return &Client{environment: environment}
	}

	log.Printf("📊 CloudWatch Metrics: ✅ ENABLED (namespace: %s)", namespace)
	return &Client{
		client:      cloudwatch.NewFromConfig(cfg),
		enabled:     true,
		environment: environment,
		async:       true,
	}
}

// RecordPoemGeneration implements Recorder
func (m *Client) RecordPoemGeneration(_ context.Context, gen Generation) {
	if !m.enabled {
		return
	}

	send := func() {
		ctx := context.Background()
		dimensions := []types.Dimension{
			{Name: aws.String("Model"), Value: aws.String(gen.Model)},
			{Name: aws.String("Environment"), Value: aws.String(m.environment)},
		}

		metricName := "PoemGenerations"
		if !gen.Success {
			metricName = "PoemGenerationErrors"
		}
		if err := m.putMetric(ctx, metricName, 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record %s metric: %v", metricName, err)
		}

		latencyMs := float64(gen.Duration.Milliseconds())
		if err := m.putMetric(ctx, "PoemGenerationLatency", latencyMs, types.StandardUnitMilliseconds, dimensions); err != nil {
			log.Printf("Failed to record PoemGenerationLatency metric: %v", err)
		}

		if gen.Usage.TotalTokens > 0 {
			total := float64(gen.Usage.TotalTokens)
			if err := m.putMetric(ctx, "LLMTokens/Total", total, types.StandardUnitCount, dimensions); err != nil {
				log.Printf("Failed to record LLMTokens/Total metric: %v", err)
			}
		}
	}

	if m.async {
		go send()
		return
	}
	send()
}

// putMetric sends a metric to CloudWatch
func (m *Client) putMetric(
	_ context.Context,
	metricName string,
	value float64,
	unit types.StandardUnit,
	dimensions []types.Dimension,
) error {
	if !m.enabled || m.client == nil {
		return nil
	}

	timeout := time.Duration(cloudwatchTimeoutSeconds) * time.Second
	cwCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := m.client.PutMetricData(cwCtx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Value:      aws.Float64(value),
				Unit:       unit,
				Timestamp:  aws.Time(time.Now()),
				Dimensions: dimensions,
			},
		},
	})

	return err
}
