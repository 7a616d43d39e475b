package metric

import (
    "context"
    enum2 "github.com/IntelliLead/GroupIdHandlers/src/pkg/metric/enum"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/model/enum"
    "github.com/aws/aws-sdk-go-v2/aws"
    "github.com/aws/aws-sdk-go-v2/config"
    "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
    "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
    "go.uber.org/zap"
)

const (
    lambdaNamespace = "AWS/Lambda"
    domainNamespace = "GroupIdHandlers/Metrics"
)

// PutMetricDataAPI is the subset of the CloudWatch client used by CloudWatchEmitter.
type PutMetricDataAPI interface {
    PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

type CloudWatchEmitter struct {
    client      PutMetricDataAPI
    handlerName enum.HandlerName
    log         *zap.SugaredLogger
}

func NewCloudWatchEmitter(ctx context.Context, region string, handlerName enum.HandlerName, log *zap.SugaredLogger) (*CloudWatchEmitter, error) {
    cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
    if err != nil {
        log.Error("Error loading AWS config: ", err)
        return nil, err
    }
    return NewCloudWatchEmitterWithClient(cloudwatch.NewFromConfig(cfg), handlerName, log), nil
}

func NewCloudWatchEmitterWithClient(client PutMetricDataAPI, handlerName enum.HandlerName, log *zap.SugaredLogger) *CloudWatchEmitter {
    return &CloudWatchEmitter{
        client:      client,
        handlerName: handlerName,
        log:         log,
    }
}

func (e *CloudWatchEmitter) Emit(ctx context.Context, metric enum2.Metric, value float64) {
    namespace := domainNamespace
    if metric.IsResponseClass() {
        namespace = lambdaNamespace
    }

    _, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
        Namespace: aws.String(namespace),
        MetricData: []types.MetricDatum{
            {
                MetricName: aws.String(metric.String()),
                Dimensions: []types.Dimension{
                    {
                        Name:  aws.String("FunctionName"),
                        Value: aws.String(e.handlerName.String()),
                    },
                },
                Unit:  types.StandardUnitCount,
                Value: aws.Float64(value),
            },
        },
    })
    if err != nil {
        e.log.Error("Error emitting metric: ", err)
    }
}
