package secret

import (
    "encoding/json"
    "fmt"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/secret/secretModel"
    "github.com/aws/aws-sdk-go/aws/session"
    "github.com/aws/aws-sdk-go/service/secretsmanager"
    "github.com/aws/aws-secretsmanager-caching-go/secretcache"
    "go.uber.org/zap"
)

// Fetcher resolves the LINE channel secrets stored under a Secrets Manager secret name.
type Fetcher interface {
    GetSecrets(secretName string) (secretModel.Secrets, error)
}

// Manager reads secrets through a Secrets Manager cache created on first use,
// so processes that never need it do not require AWS credentials.
type Manager struct {
    log         *zap.SugaredLogger
    secretCache *secretcache.Cache
}

func NewManager(log *zap.SugaredLogger) *Manager {
    return &Manager{
        log: log,
    }
}

func (m *Manager) GetSecrets(secretName string) (secretModel.Secrets, error) {
    if m.secretCache == nil {
        // region comes from AWS_REGION or the shared AWS config
        mySession, err := session.NewSessionWithOptions(session.Options{SharedConfigState: session.SharedConfigEnable})
        if err != nil {
            m.log.Error("Error creating AWS session: ", err)
            return secretModel.Secrets{}, err
        }

        cache, err := secretcache.New(func(c *secretcache.Cache) {
            c.Client = secretsmanager.New(mySession)
        })
        if err != nil {
            m.log.Error("Error creating secret cache: ", err)
            return secretModel.Secrets{}, err
        }
        m.secretCache = cache
    }

    result, err := m.secretCache.GetSecretString(secretName)
    if err != nil {
        m.log.Errorf("Error getting secret '%s': %v", secretName, err)
        return secretModel.Secrets{}, err
    }

    return ParseSecrets(result)
}

func ParseSecrets(secretString string) (secretModel.Secrets, error) {
    var secrets secretModel.Secrets
    err := json.Unmarshal([]byte(secretString), &secrets)
    if err != nil {
        return secretModel.Secrets{}, fmt.Errorf("error unmarshalling secrets: %w", err)
    }
    return secrets, nil
}
