package aws

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/models"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

const (
	DefaultPublicDNSSuffix = "aws.natinst.com"
	PrivateDNSSuffix       = "ec2.internal"

	defaultWaiterDelay   = 30 * time.Second
	defaultMaxWait       = 999 * defaultWaiterDelay
	defaultRebootSettle  = 30 * time.Second
	defaultStatePoll     = 10 * time.Second
	defaultSocketPort    = 3389
	defaultSocketRetries = 10
	defaultSocketDelay   = 5 * time.Second
)

// DefaultQueryStates is used when looking up instances by tag.
var DefaultQueryStates = []string{"running"}

// InstanceFilter selects instances. An empty filter matches every instance.
type InstanceFilter struct {
	IDs        []string
	Filters    []ec2types.Filter
	DateRange  *models.DateRange
	States     []string
	NewestOnly bool
}

// TagFilter builds an EC2 filter on a tag value.
func TagFilter(key string, values ...string) ec2types.Filter {
	return ec2types.Filter{Name: aws.String("tag:" + key), Values: values}
}

func Filter(name string, values ...string) ec2types.Filter {
	return ec2types.Filter{Name: aws.String(name), Values: values}
}

// Instances manages EC2 instances of one region.
type Instances struct {
	client          EC2API
	publicSuffix    string
	rebootSettle    time.Duration
	statePoll       time.Duration
	waiterDelay     time.Duration
	maxWait         time.Duration
	socketPort      int
	socketRetries   int
	socketDelay     time.Duration
	now             func() time.Time
	waitForSocketFn func(ctx context.Context, host string, port, retries int, delay time.Duration) error
}

type InstancesOption func(*Instances)

func WithPublicDNSSuffix(suffix string) InstancesOption {
	return func(i *Instances) {
		i.publicSuffix = suffix
	}
}

func WithRebootSettle(d time.Duration) InstancesOption {
	return func(i *Instances) {
		i.rebootSettle = d
	}
}

// WithSocketWait configures how a rebooted instance is considered back up.
func WithSocketWait(port, retries int, delay time.Duration) InstancesOption {
	return func(i *Instances) {
		i.socketPort = port
		i.socketRetries = retries
		i.socketDelay = delay
	}
}

func WithStatePoll(d time.Duration) InstancesOption {
	return func(i *Instances) {
		i.statePoll = d
	}
}

func WithClock(now func() time.Time) InstancesOption {
	return func(i *Instances) {
		i.now = now
	}
}

func NewInstances(client EC2API, opts ...InstancesOption) *Instances {
	i := &Instances{
		client:          client,
		publicSuffix:    DefaultPublicDNSSuffix,
		rebootSettle:    defaultRebootSettle,
		statePoll:       defaultStatePoll,
		waiterDelay:     defaultWaiterDelay,
		maxWait:         defaultMaxWait,
		socketPort:      defaultSocketPort,
		socketRetries:   defaultSocketRetries,
		socketDelay:     defaultSocketDelay,
		now:             time.Now,
		waitForSocketFn: WaitForSocket,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// CreateRequest describes the instances to launch.
type CreateRequest struct {
	ImageID            string
	InstanceType       string
	Count              int
	SubnetID           string
	SecurityGroupIDs   []string
	KeyPairName        string
	IAMInstanceProfile string
	BlockDevices       []BlockDevice
	Tags               []models.Tag
	Wait               bool
}

type BlockDevice struct {
	DeviceName          string
	DeleteOnTermination bool
}

// CreateInstances launches instances and returns their ids. With Wait set it
// blocks until every instance passes its status checks.
func (i *Instances) CreateInstances(ctx context.Context, req CreateRequest) ([]string, error) {
	log := zap.S().Named("aws_instances")

	if req.ImageID == "" {
		return nil, srvErrors.NewValidationError("ImageID", "required")
	}
	count := req.Count
	if count <= 0 {
		count = 1
	}

	input := &ec2.RunInstancesInput{
		ImageId:      aws.String(req.ImageID),
		InstanceType: ec2types.InstanceType(req.InstanceType),
		MinCount:     aws.Int32(1),
		MaxCount:     aws.Int32(int32(count)),
		NetworkInterfaces: []ec2types.InstanceNetworkInterfaceSpecification{
			{
				DeviceIndex:              aws.Int32(0),
				SubnetId:                 aws.String(req.SubnetID),
				AssociatePublicIpAddress: aws.Bool(false),
				Groups:                   req.SecurityGroupIDs,
			},
		},
	}
	if req.KeyPairName != "" {
		input.KeyName = aws.String(req.KeyPairName)
	}
	if req.IAMInstanceProfile != "" {
		input.IamInstanceProfile = &ec2types.IamInstanceProfileSpecification{Name: aws.String(req.IAMInstanceProfile)}
	}
	for _, bd := range req.BlockDevices {
		input.BlockDeviceMappings = append(input.BlockDeviceMappings, ec2types.BlockDeviceMapping{
			DeviceName: aws.String(bd.DeviceName),
			Ebs:        &ec2types.EbsBlockDevice{DeleteOnTermination: aws.Bool(bd.DeleteOnTermination)},
		})
	}
	if len(req.Tags) > 0 {
		input.TagSpecifications = []ec2types.TagSpecification{
			{ResourceType: ec2types.ResourceTypeInstance, Tags: toEC2Tags(req.Tags)},
		}
	}

	out, err := i.client.RunInstances(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to run instances: %w", err)
	}

	ids := make([]string, 0, len(out.Instances))
	for _, inst := range out.Instances {
		ids = append(ids, aws.ToString(inst.InstanceId))
	}
	log.Infow("instances created", "instance_ids", ids)

	if req.Wait && len(ids) > 0 {
		log.Info("waiting for instances to load")
		waiter := ec2.NewInstanceStatusOkWaiter(i.client, func(o *ec2.InstanceStatusOkWaiterOptions) {
			o.MinDelay = i.waiterDelay
		})
		if err := waiter.Wait(ctx, &ec2.DescribeInstanceStatusInput{InstanceIds: ids}, i.maxWait); err != nil {
			return ids, fmt.Errorf("failed waiting for instances %v: %w", ids, err)
		}
		log.Info("instances loaded")
	}

	return ids, nil
}

// DescribeInstances returns the instances matching f. With f.NewestOnly at
// most one instance is returned.
func (i *Instances) DescribeInstances(ctx context.Context, f InstanceFilter) ([]models.Instance, error) {
	input := &ec2.DescribeInstancesInput{
		InstanceIds: f.IDs,
		Filters:     f.Filters,
	}

	states := make([]string, 0, len(f.States))
	for _, s := range f.States {
		states = append(states, strings.ToLower(s))
	}

	var instances []models.Instance
	paginator := ec2.NewDescribeInstancesPaginator(i.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}
		for _, r := range page.Reservations {
			for _, inst := range r.Instances {
				m := toInstance(inst)
				if f.DateRange != nil && !f.DateRange.Contains(m.LaunchTime) {
					continue
				}
				if len(states) > 0 && !slices.Contains(states, strings.ToLower(m.State)) {
					continue
				}
				instances = append(instances, m)
			}
		}
	}

	if f.NewestOnly && len(instances) > 0 {
		return []models.Instance{newest(instances)}, nil
	}
	return instances, nil
}

func (i *Instances) DescribeInstanceIDs(ctx context.Context, f InstanceFilter) ([]string, error) {
	instances, err := i.DescribeInstances(ctx, f)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(instances))
	for _, inst := range instances {
		ids = append(ids, inst.ID)
	}
	return ids, nil
}

// DescribeDNSNames returns the private (or public) DNS names of the
// matching instances.
func (i *Instances) DescribeDNSNames(ctx context.Context, f InstanceFilter, private bool) ([]string, error) {
	instances, err := i.DescribeInstances(ctx, f)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(instances))
	for _, inst := range instances {
		if private {
			names = append(names, inst.PrivateDNSName)
		} else {
			names = append(names, inst.PublicDNSName)
		}
	}
	return names, nil
}

// PublicDNSNamesToIDs resolves public DNS names through the matching private
// names.
func (i *Instances) PublicDNSNamesToIDs(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, srvErrors.NewValidationError("names", "at least one public DNS name is required")
	}
	return i.DescribeInstanceIDs(ctx, InstanceFilter{
		Filters: []ec2types.Filter{Filter("private-dns-name", PublicToPrivateDNS(names, i.publicSuffix)...)},
	})
}

// CleanupInstances stops or terminates the matching instances and returns
// their ids.
func (i *Instances) CleanupInstances(ctx context.Context, f InstanceFilter, terminate, wait bool) ([]string, error) {
	log := zap.S().Named("aws_instances")

	if len(f.IDs) == 0 && len(f.Filters) == 0 && f.DateRange == nil && len(f.States) == 0 {
		return nil, srvErrors.NewValidationError("filter", "a valid list of instance ids or filters is required")
	}

	ids := f.IDs
	if len(ids) == 0 || len(f.Filters) > 0 || f.DateRange != nil || len(f.States) > 0 {
		var err error
		ids, err = i.DescribeInstanceIDs(ctx, f)
		if err != nil {
			return nil, err
		}
	}
	if len(ids) == 0 {
		log.Info("no matching instances were found for cleanup")
		return nil, nil
	}

	action := "stopped"
	if terminate {
		action = "terminated"
	}
	log.Infow("instances will be "+action, "instance_ids", ids)

	var err error
	if terminate {
		_, err = i.client.TerminateInstances(ctx, &ec2.TerminateInstancesInput{InstanceIds: ids})
	} else {
		_, err = i.client.StopInstances(ctx, &ec2.StopInstancesInput{InstanceIds: ids})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to clean up instances %v: %w", ids, err)
	}

	if !wait {
		return ids, nil
	}

	log.Infow("waiting for instances", "action", action)
	input := &ec2.DescribeInstancesInput{InstanceIds: ids}
	if terminate {
		err = ec2.NewInstanceTerminatedWaiter(i.client, func(o *ec2.InstanceTerminatedWaiterOptions) {
			o.MinDelay = i.waiterDelay
		}).Wait(ctx, input, i.maxWait)
	} else {
		err = ec2.NewInstanceStoppedWaiter(i.client, func(o *ec2.InstanceStoppedWaiterOptions) {
			o.MinDelay = i.waiterDelay
		}).Wait(ctx, input, i.maxWait)
	}
	if err != nil {
		return ids, fmt.Errorf("failed waiting for instances %v: %w", ids, err)
	}
	log.Info("instance operations completed")
	return ids, nil
}

// Reboot reboots the instances and waits until each accepts connections
// again.
func (i *Instances) Reboot(ctx context.Context, ids []string) error {
	return i.RebootInstances(ctx, ids, true)
}

func (i *Instances) RebootInstances(ctx context.Context, ids []string, wait bool) error {
	log := zap.S().Named("aws_instances")

	if len(ids) == 0 {
		return srvErrors.NewValidationError("ids", "a valid list of instance ids is required")
	}

	private, err := i.DescribeDNSNames(ctx, InstanceFilter{IDs: ids}, true)
	if err != nil {
		return err
	}
	names := PrivateToPublicDNS(private, i.publicSuffix)

	log.Infow("rebooting instances", "dns_names", names)
	if _, err := i.client.RebootInstances(ctx, &ec2.RebootInstancesInput{InstanceIds: ids}); err != nil {
		return fmt.Errorf("failed to reboot instances %v: %w", ids, err)
	}
	if !wait {
		return nil
	}

	// The port stays open for a moment after the reboot request; waiting
	// too early would see the instance as already back.
	log.Info("waiting for instances to reboot")
	if err := sleep(ctx, i.rebootSettle); err != nil {
		return err
	}
	if err := i.WaitForInstanceState(ctx, ids, string(ec2types.InstanceStateNameRunning)); err != nil {
		return err
	}
	for _, name := range names {
		if err := i.waitForSocketFn(ctx, name, i.socketPort, i.socketRetries, i.socketDelay); err != nil {
			return err
		}
		log.Infow("instance rebooted", "dns_name", name)
	}
	return nil
}

// CreateOrUpdateTags sets tag values on resources.
func (i *Instances) CreateOrUpdateTags(ctx context.Context, resourceIDs []string, tags []models.Tag) error {
	if len(resourceIDs) == 0 {
		return srvErrors.NewValidationError("resourceIDs", "required")
	}
	_, err := i.client.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: resourceIDs,
		Tags:      toEC2Tags(tags),
	})
	if err != nil {
		return fmt.Errorf("failed to tag %v: %w", resourceIDs, err)
	}
	return nil
}

// ExpiredTerminationInstances returns running instances whose
// TerminationDate tag is today or earlier.
func (i *Instances) ExpiredTerminationInstances(ctx context.Context) ([]string, error) {
	log := zap.S().Named("aws_instances")

	ids, err := i.DescribeInstanceIDs(ctx, InstanceFilter{
		Filters: []ec2types.Filter{Filter("tag-key", models.TagTerminationDate)},
		States:  DefaultQueryStates,
	})
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		log.Info("no instances were found in need of stopping or terminating")
		return nil, nil
	}

	out, err := i.client.DescribeTags(ctx, &ec2.DescribeTagsInput{
		Filters: []ec2types.Filter{
			Filter("resource-id", ids...),
			Filter("tag-key", models.TagTerminationDate),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe tags: %w", err)
	}

	y, m, d := i.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var expired []string
	for _, tag := range out.Tags {
		value := aws.ToString(tag.Value)
		if value == "" {
			continue
		}
		date, err := time.Parse(models.TerminationDateLayout, value)
		if err != nil {
			log.Warnw("invalid termination date", "instance_id", aws.ToString(tag.ResourceId), "value", value)
			continue
		}
		if !date.After(today) {
			expired = append(expired, aws.ToString(tag.ResourceId))
		}
	}

	if len(expired) > 0 {
		log.Infow("found instances needing termination", "count", len(expired), "instance_ids", expired)
	} else {
		log.Info("no instances were found in need of stopping or terminating")
	}
	return expired, nil
}

// WaitForInstanceState polls until every instance is in one of states
// (running when empty).
func (i *Instances) WaitForInstanceState(ctx context.Context, ids []string, states ...string) error {
	if len(ids) == 0 {
		return srvErrors.NewValidationError("ids", "a valid list of instance ids is required")
	}
	if len(states) == 0 {
		states = DefaultQueryStates
	}

	for {
		out, err := i.client.DescribeInstanceStatus(ctx, &ec2.DescribeInstanceStatusInput{
			InstanceIds:         ids,
			IncludeAllInstances: aws.Bool(true),
		})
		if err != nil {
			return fmt.Errorf("failed to describe instance status: %w", err)
		}

		waiting := false
		for _, st := range out.InstanceStatuses {
			if st.InstanceState == nil || !slices.Contains(states, string(st.InstanceState.Name)) {
				waiting = true
				break
			}
		}
		if !waiting {
			return nil
		}
		if err := sleep(ctx, i.statePoll); err != nil {
			return err
		}
	}
}

// PublicToPrivateDNS swaps the public suffix for ec2.internal.
func PublicToPrivateDNS(names []string, publicSuffix string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.ReplaceAll(n, publicSuffix, PrivateDNSSuffix))
	}
	return out
}

func PrivateToPublicDNS(names []string, publicSuffix string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.ReplaceAll(n, PrivateDNSSuffix, publicSuffix))
	}
	return out
}

// InstanceURLs builds landing page URLs, e.g. https://<dns name>.
func InstanceURLs(prefix string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, fmt.Sprintf("%s://%s", prefix, n))
	}
	return out
}

func toInstance(inst ec2types.Instance) models.Instance {
	m := models.Instance{
		ID:             aws.ToString(inst.InstanceId),
		InstanceType:   string(inst.InstanceType),
		ImageID:        aws.ToString(inst.ImageId),
		PrivateDNSName: aws.ToString(inst.PrivateDnsName),
		PublicDNSName:  aws.ToString(inst.PublicDnsName),
		PrivateIP:      aws.ToString(inst.PrivateIpAddress),
		PublicIP:       aws.ToString(inst.PublicIpAddress),
		LaunchTime:     aws.ToTime(inst.LaunchTime),
		Tags:           make(map[string]string, len(inst.Tags)),
	}
	if inst.State != nil {
		m.State = string(inst.State.Name)
	}
	for _, t := range inst.Tags {
		m.Tags[aws.ToString(t.Key)] = aws.ToString(t.Value)
	}
	return m
}

func toEC2Tags(tags []models.Tag) []ec2types.Tag {
	out := make([]ec2types.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, ec2types.Tag{Key: aws.String(t.Key), Value: aws.String(t.Value)})
	}
	return out
}

func newest(instances []models.Instance) models.Instance {
	n := instances[0]
	for _, inst := range instances[1:] {
		if inst.LaunchTime.After(n.LaunchTime) {
			n = inst
		}
	}
	return n
}
