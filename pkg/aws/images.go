package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

// NewestImageID returns the most recently created image matching filters.
func (i *Instances) NewestImageID(ctx context.Context, filters ...ec2types.Filter) (string, error) {
	out, err := i.client.DescribeImages(ctx, &ec2.DescribeImagesInput{Filters: filters})
	if err != nil {
		return "", fmt.Errorf("failed to describe images: %w", err)
	}

	var (
		id     string
		latest time.Time
	)
	for _, img := range out.Images {
		created, err := time.Parse(time.RFC3339, aws.ToString(img.CreationDate))
		if err != nil {
			continue
		}
		if id == "" || created.After(latest) {
			id = aws.ToString(img.ImageId)
			latest = created
		}
	}

	if id == "" {
		return "", srvErrors.NewResourceNotFoundError("image", fmt.Sprintf("%v", filterNames(filters)))
	}
	return id, nil
}

func filterNames(filters []ec2types.Filter) []string {
	out := make([]string, 0, len(filters))
	for _, f := range filters {
		out = append(out, fmt.Sprintf("%s=%v", aws.ToString(f.Name), f.Values))
	}
	return out
}
