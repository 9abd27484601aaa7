package constants

import "time"

// 上传文件
const (
	UploadPathPrefix       = "x-dimension" // 允许上传的对象前缀
	UploadCredentialExpire = 30 * time.Minute
	UploadURLExpire        = 15 * time.Minute
)

// 临时密钥允许的操作：简单上传与分片上传
var UploadAllowActions = []string{
	"s3:PutObject",
	"s3:AbortMultipartUpload",
	"s3:ListMultipartUploadParts",
	"s3:ListBucketMultipartUploads",
}
