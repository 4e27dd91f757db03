package s3kv

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects map[string][]byte
	err     error
	buckets []string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}}
}

func (f *fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.buckets = append(f.buckets, aws.ToString(in.Bucket))
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("missing")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.buckets = append(f.buckets, aws.ToString(in.Bucket))
	if f.err != nil {
		return nil, f.err
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.buckets = append(f.buckets, aws.ToString(in.Bucket))
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestStore_RoundTrip(t *testing.T) {
	f := newFakeObjects()
	s := &Store{api: f, bucket: "gate"}
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "registeredUsers", []byte(`{}`)))
	assert.Contains(t, f.objects, "localstorage/registeredUsers")

	v, err := s.Get(ctx, "registeredUsers")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), v)

	require.NoError(t, s.Delete(ctx, "registeredUsers"))
	v, err = s.Get(ctx, "registeredUsers")
	require.NoError(t, err)
	assert.Nil(t, v)

	for _, b := range f.buckets {
		assert.Equal(t, "gate", b)
	}
}

func TestStore_ErrorsWrapped(t *testing.T) {
	f := newFakeObjects()
	f.err = errors.New("access denied")
	s := &Store{api: f, bucket: "gate"}
	ctx := context.Background()

	_, err := s.Get(ctx, "k")
	assert.ErrorContains(t, err, "failed to get kv[k]: access denied")
	assert.ErrorContains(t, s.Set(ctx, "k", []byte("v")), "failed to set kv[k]")
	assert.ErrorContains(t, s.Delete(ctx, "k"), "failed to delete kv[k]")
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{Region: "us-east-1"})
	require.Error(t, err)
}

func TestNew_AWSConfigError(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("boom")
	}

	_, err := New(context.Background(), Config{Bucket: "gate", Region: "us-east-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load aws config: boom")
}

func TestNew_WithStaticCredentials(t *testing.T) {
	s, err := New(context.Background(), Config{
		Bucket:   "gate",
		Region:   "us-east-1",
		Endpoint: "http://127.0.0.1:9000",
		User:     "admin",
		Password: "secretpassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "gate", s.bucket)
}
