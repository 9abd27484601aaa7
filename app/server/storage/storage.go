package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/Edward-Brock/x-dimension/app/server/auth"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/google/uuid"
	"path"
	"strings"
	"time"
)

// federationName 临时凭证的联合用户名，长度不超过 32
const federationName = "x-dimension-upload"

var ErrNotConfigured = errors.New("object storage is not configured")

type Config struct {
	Region          string
	Endpoint        string // 兼容 S3 的服务地址，为空时使用 AWS
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

func (c Config) Enabled() bool {
	return c.Bucket != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

type federator interface {
	GetFederationToken(ctx context.Context, params *sts.GetFederationTokenInput, optFns ...func(*sts.Options)) (*sts.GetFederationTokenOutput, error)
}

type presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// TemporaryKeys 前端直传使用的临时凭证
type TemporaryKeys struct {
	TmpSecretID  string `json:"tmpSecretId"`
	TmpSecretKey string `json:"tmpSecretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int64  `json:"startTime"`
	ExpiredTime  int64  `json:"expiredTime"`
}

type UploadURL struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	Method    string `json:"method"`
	ExpiredAt int64  `json:"expiredTime"`
}

// Vendor 签发只能向上传前缀写入的临时凭证与预签名地址
type Vendor struct {
	bucket  string
	prefix  string
	sts     federator
	presign presigner
	now     func() time.Time
}

func New(ctx context.Context, cfg Config) (*Vendor, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	stsClient := sts.NewFromConfig(awsCfg, func(o *sts.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newVendor(cfg.Bucket, stsClient, s3.NewPresignClient(client), time.Now), nil
}

func newVendor(bucket string, f federator, p presigner, now func() time.Time) *Vendor {
	return &Vendor{
		bucket:  bucket,
		prefix:  constants.UploadPathPrefix,
		sts:     f,
		presign: p,
		now:     now,
	}
}

type policyStatement struct {
	Effect   string   `json:"Effect"`
	Action   []string `json:"Action"`
	Resource []string `json:"Resource"`
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

// policy 只允许对上传前缀下的对象执行上传相关操作
func (v *Vendor) policy() (string, error) {
	doc := policyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{{
			Effect:   "Allow",
			Action:   constants.UploadAllowActions,
			Resource: []string{fmt.Sprintf("arn:aws:s3:::%s/%s/*", v.bucket, v.prefix)},
		}},
	}

	b, err := json.Marshal(&doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (v *Vendor) TemporaryKeys(ctx context.Context, scope string) (*TemporaryKeys, error) {
	if strings.TrimSpace(scope) == "" {
		return nil, auth.ErrInvalidInput.WithMessage("缺少 scope")
	}

	policy, err := v.policy()
	if err != nil {
		return nil, fmt.Errorf("failed to build policy: %w", err)
	}

	start := v.now()
	out, err := v.sts.GetFederationToken(ctx, &sts.GetFederationTokenInput{
		Name:            aws.String(federationName),
		DurationSeconds: aws.Int32(int32(constants.UploadCredentialExpire.Seconds())),
		Policy:          aws.String(policy),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get federation token: %w", err)
	}
	if out.Credentials == nil {
		return nil, errors.New("federation token response has no credentials")
	}

	expired := start.Add(constants.UploadCredentialExpire)
	if out.Credentials.Expiration != nil {
		expired = *out.Credentials.Expiration
	}

	return &TemporaryKeys{
		TmpSecretID:  aws.ToString(out.Credentials.AccessKeyId),
		TmpSecretKey: aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken: aws.ToString(out.Credentials.SessionToken),
		StartTime:    start.Unix(),
		ExpiredTime:  expired.Unix(),
	}, nil
}

// PresignUpload 为随机生成的对象名签出 PUT 地址，保留原文件扩展名
func (v *Vendor) PresignUpload(ctx context.Context, filename string) (*UploadURL, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, auth.ErrInvalidInput.WithMessage("缺少文件名")
	}

	key := v.prefix + "/" + uuid.NewString() + strings.ToLower(path.Ext(path.Base(filename)))

	req, err := v.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(constants.UploadURLExpire))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &UploadURL{
		URL:       req.URL,
		Key:       key,
		Method:    req.Method,
		ExpiredAt: v.now().Add(constants.UploadURLExpire).Unix(),
	}, nil
}
