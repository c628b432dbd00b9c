package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

type Configuration struct {
	AWS          AWS          `mapstructure:"aws"`
	Worker       Worker       `mapstructure:"worker"`
	Remote       Remote       `mapstructure:"remote"`
	HTTP         HTTP         `mapstructure:"http"`
	Teams        Teams        `mapstructure:"teams"`
	WebServer    WebServer    `mapstructure:"web_server"`
	Installation Installation `mapstructure:"installation"`
	Users        Users        `mapstructure:"users"`
	TestMonitor  TestMonitor  `mapstructure:"test_monitor"`
	TestRun      TestRun      `mapstructure:"test_run"`
	Store        Store        `mapstructure:"store"`
	API          API          `mapstructure:"api"`
	LogFormat    string       `mapstructure:"log_format" default:"console"`
	LogLevel     string       `mapstructure:"log_level" default:"info"`
}

type AWS struct {
	Region             string            `mapstructure:"region" default:"us-east-1"`
	InstanceType       string            `mapstructure:"instance_type" default:"r5.xlarge"`
	KeyPairName        string            `mapstructure:"key_pair_name" default:"syslink-jenkins"`
	SubnetID           string            `mapstructure:"subnet_id" default:"subnet-01e7368d67dc888c9"`
	SecurityGroupIDs   []string          `mapstructure:"security_group_ids" default:"[\"sg-02b4b7b6eefa0aea1\",\"sg-0d0107dfbfda18fcb\"]"`
	IAMInstanceProfile string            `mapstructure:"iam_instance_profile" default:"ni-systemlink-ec2role-dev"`
	ImageCategory      string            `mapstructure:"image_category" default:"BaseImage"`
	BlockDeviceName    string            `mapstructure:"block_device_name" default:"/dev/sda1"`
	PublicDNSSuffix    string            `mapstructure:"public_dns_suffix" default:"aws.natinst.com"`
	DirectConnectTags  map[string]string `mapstructure:"direct_connect_tags" default:"{\"CostCenter\":\"2632\",\"Department\":\"rd\",\"SiteCode\":\"001\",\"Team\":\"systemlink-aws@ni.com\",\"Tier\":\"dev\"}"`
	QueryStates        []string          `mapstructure:"query_states" default:"[\"running\"]"`
	// TerminationDays is how far from today new instances expire.
	TerminationDays int `mapstructure:"termination_days" default:"2"`
}

// Worker is the long-lived dev instance used instead of provisioning.
type Worker struct {
	Name           string `mapstructure:"name"`
	InstanceID     string `mapstructure:"instance_id"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	SystemUsername string `mapstructure:"system_username"`
	SystemPassword string `mapstructure:"system_password"`
	HTTPPrefix     string `mapstructure:"http_prefix" default:"https"`
}

type Remote struct {
	SettleTime       time.Duration `mapstructure:"settle_time" default:"3s"`
	PollInterval     time.Duration `mapstructure:"poll_interval" default:"5s"`
	SubmitRetryCount int           `mapstructure:"submit_retry_count" default:"60"`
	SubmitBackoff    time.Duration `mapstructure:"submit_backoff" default:"60s"`
	RunTimeBudget    time.Duration `mapstructure:"run_time_budget" default:"600s"`
	RunRetryCount    int           `mapstructure:"run_retry_count" default:"3"`
	RunCommandBudget time.Duration `mapstructure:"run_command_budget" default:"30s"`
	RunRetryDelay    time.Duration `mapstructure:"run_retry_delay" default:"10s"`
}

type HTTP struct {
	RetryCount int           `mapstructure:"retry_count" default:"60"`
	RetryDelay time.Duration `mapstructure:"retry_delay" default:"10s"`
	Timeout    time.Duration `mapstructure:"timeout" default:"60s"`
	Debug      bool          `mapstructure:"debug"`
}

type Teams struct {
	DailyInstancesWebhook  string `mapstructure:"daily_instances_webhook"`
	TestDayInstanceWebhook string `mapstructure:"test_day_instance_webhook"`
	FailureWebhook         string `mapstructure:"failure_webhook"`
}

// WebServer configures the web server of provisioned instances.
type WebServer struct {
	// ConfigCommand and RestartCommand may reference the instance with {dns}.
	ConfigCommand    string        `mapstructure:"config_command"`
	RestartCommand   string        `mapstructure:"restart_command"`
	OutputIgnoreList []string      `mapstructure:"output_ignore_list"`
	Budget           time.Duration `mapstructure:"budget" default:"300s"`
}

type Feed struct {
	Name string `mapstructure:"name"`
	URI  string `mapstructure:"uri"`
}

// Installation drives the package manager. Command templates may reference
// {name} and {uri} of a feed.
type Installation struct {
	SuiteBuild               string   `mapstructure:"suite_build" default:"19.6.0"`
	Feeds                    []Feed   `mapstructure:"feeds"`
	PackageManagerFeedMarker string   `mapstructure:"package_manager_feed_marker" default:"package-manager"`
	RemoveFeedCommand        string   `mapstructure:"remove_feed_command" default:"nipkg feed-remove {name}"`
	AddFeedCommand           string   `mapstructure:"add_feed_command" default:"nipkg feed-add --name={name} {uri}"`
	UpdateFeedsCommand       string   `mapstructure:"update_feeds_command" default:"nipkg update"`
	UpgradeUpdaterCommand    string   `mapstructure:"upgrade_updater_command" default:"nipkg install --accept-eulas -y --force-locked {name}"`
	UpgradeManagerCommand    string   `mapstructure:"upgrade_manager_command" default:"nipkg upgrade --accept-eulas -y ni-package-manager"`
	InstallFeedCommand       string   `mapstructure:"install_feed_command" default:"nipkg install --accept-eulas -y --include-recommended {name}"`
	OutputIgnoreList         []string `mapstructure:"output_ignore_list" default:"[\"already exists\",\"does not exist\",\"not found\"]"`
}

type WindowsUser struct {
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	Groups   []string `mapstructure:"groups"`
}

// Users are added to provisioned instances. Command templates may reference
// {username}, {password} and {group}.
type Users struct {
	Accounts         []WindowsUser `mapstructure:"accounts"`
	AddCommand       string        `mapstructure:"add_command" default:"net user {username} {password} /add /y"`
	GroupCommand     string        `mapstructure:"group_command" default:"net localgroup {group} {username} /add"`
	OutputIgnoreList []string      `mapstructure:"output_ignore_list" default:"[\"already exists\",\"already a member\"]"`
}

type TestMonitor struct {
	URL         string `mapstructure:"url"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	ProgramName string `mapstructure:"program_name" default:"SystemLink ATS"`
	// ResultID attaches uploads to an existing result instead of creating one.
	ResultID string `mapstructure:"result_id"`
}

type TestRun struct {
	Pytest           string   `mapstructure:"pytest" default:"pytest"`
	JUnitXMLPath     string   `mapstructure:"junit_xml_path" default:"result.xml"`
	MarkString       string   `mapstructure:"mark_string" default:"daily and not long_run_time"`
	Operator         string   `mapstructure:"operator" default:"NI Test"`
	CPUCount         int      `mapstructure:"cpu_count"`
	StopOnFirstFail  bool     `mapstructure:"stop_on_first_failure"`
	DisableReporting bool     `mapstructure:"disable_reporting" default:"true"`
	IgnorePaths      []string `mapstructure:"ignore_paths" default:"[\"common/\",\"buckets/nxg\"]"`
}

type Store struct {
	// Path of the DuckDB ledger file; ":memory:" keeps it in memory.
	Path string `mapstructure:"path" default:"ats-ledger.duckdb"`
}

type API struct {
	Mode string `mapstructure:"mode" default:"dev"`
	Port int    `mapstructure:"port" default:"8000"`
}

// NewConfigurationWithDefaults returns a configuration populated from the
// default tags.
func NewConfigurationWithDefaults() (*Configuration, error) {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply configuration defaults: %w", err)
	}
	return cfg, nil
}

// EnvPrefix prefixes every environment override, e.g. ATS_AWS_REGION for
// aws.region.
const EnvPrefix = "ATS"

// Load applies the defaults, then the file at path (JSON or YAML, by
// extension), then ATS_* environment overrides. An empty path skips the
// file.
func Load(path string) (*Configuration, error) {
	cfg, err := NewConfigurationWithDefaults()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only answers Get for keys viper already knows about.
	for _, key := range keys(reflect.TypeOf(*cfg), "") {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// keys lists the dotted mapstructure keys of every leaf field of t.
func keys(t reflect.Type, prefix string) []string {
	var out []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		if f.Type.Kind() == reflect.Struct {
			out = append(out, keys(f.Type, key)...)
			continue
		}
		out = append(out, key)
	}
	return out
}

func (c *Configuration) Validate() error {
	if c.AWS.Region == "" {
		return srvErrors.NewValidationError("aws.region", "required")
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return srvErrors.NewValidationError("log_format", fmt.Sprintf("unknown format %q", c.LogFormat))
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return srvErrors.NewValidationError("log_level", err.Error())
	}
	switch c.API.Mode {
	case "dev", "prod":
	default:
		return srvErrors.NewValidationError("api.mode", fmt.Sprintf("unknown mode %q", c.API.Mode))
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return srvErrors.NewValidationError("api.port", fmt.Sprintf("%d is out of range", c.API.Port))
	}
	if c.Remote.SubmitRetryCount <= 0 || c.Remote.RunRetryCount <= 0 || c.HTTP.RetryCount <= 0 {
		return srvErrors.NewValidationError("retry count", "must be positive")
	}
	for _, f := range c.Installation.Feeds {
		if f.Name == "" || f.URI == "" {
			return srvErrors.NewValidationError("installation.feeds", "every feed needs a name and a uri")
		}
	}
	return nil
}

// DebugMap returns the configuration for logging with credentials masked.
func (c *Configuration) DebugMap() map[string]any {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "****"
	}
	return map[string]any{
		"aws.region":          c.AWS.Region,
		"aws.instance_type":   c.AWS.InstanceType,
		"aws.subnet_id":       c.AWS.SubnetID,
		"worker.name":         c.Worker.Name,
		"worker.password":     mask(c.Worker.Password),
		"installation.suite":  c.Installation.SuiteBuild,
		"installation.feeds":  len(c.Installation.Feeds),
		"users.accounts":      len(c.Users.Accounts),
		"test_monitor.url":    c.TestMonitor.URL,
		"test_monitor.passwd": mask(c.TestMonitor.Password),
		"store.path":          c.Store.Path,
		"api.port":            c.API.Port,
		"log_format":          c.LogFormat,
		"log_level":           c.LogLevel,
	}
}
