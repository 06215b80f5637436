package s3

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func TestObjectKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "owner/id_cv.pdf", want: "owner/id_cv.pdf"},
		{name: "prefix", prefix: "resumes", key: "owner/id_cv.pdf", want: "resumes/owner/id_cv.pdf"},
		{name: "padded prefix", prefix: " /resumes/ ", key: "/owner/id_cv.pdf", want: "resumes/owner/id_cv.pdf"},
		{name: "nested prefix", prefix: "prod/resumes", key: "owner/id_cv.pdf", want: "prod/resumes/owner/id_cv.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &Store{prefix: normalizePrefix(tt.prefix)}
			if got := s.objectKey(tt.key); got != tt.want {
				t.Fatalf("objectKey(%q) with prefix %q = %q, want %q", tt.key, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestApplyEncryption(t *testing.T) {
	t.Parallel()

	in := &s3.PutObjectInput{}
	(&Store{}).applyEncryption(in)
	if in.ServerSideEncryption != s3types.ServerSideEncryptionAes256 || in.SSEKMSKeyId != nil {
		t.Fatalf("expected AES256 without KMS key, got %v", in.ServerSideEncryption)
	}

	in = &s3.PutObjectInput{}
	(&Store{kmsKeyID: "alias/resumes"}).applyEncryption(in)
	if in.ServerSideEncryption != s3types.ServerSideEncryptionAwsKms {
		t.Fatalf("expected aws:kms, got %v", in.ServerSideEncryption)
	}
	if aws.ToString(in.SSEKMSKeyId) != "alias/resumes" {
		t.Fatalf("unexpected KMS key %q", aws.ToString(in.SSEKMSKeyId))
	}
}
