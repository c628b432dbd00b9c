// Package config defines the configuration structure for the ATS harness.
//
// Configuration is organized into logical sections and populated in three
// layers: `default` struct tags (github.com/creasty/defaults), an optional
// JSON or YAML file read with viper, and finally command-line flags.
//
// # Configuration Structure
//
//	Configuration
//	├── AWS           - EC2 launch parameters and tags
//	├── Worker        - Dev worker used instead of provisioning
//	├── Remote        - Remote command timing and retries
//	├── HTTP          - HTTP verb layer retries
//	├── Teams         - MS Teams webhooks
//	├── WebServer     - Web server configuration and restart commands
//	├── Installation  - Package manager feeds and commands
//	├── Users         - Windows users to add
//	├── TestMonitor   - Test Monitor server for result uploads
//	├── TestRun       - pytest invocation
//	├── Store         - Local DuckDB ledger
//	├── API           - Ledger API server
//	├── LogFormat     - Logging format
//	└── LogLevel      - Logging verbosity
//
// # AWS Configuration
//
//	┌────────────────────┬─────────────────────────────┬─────────────────────────────────┐
//	│ Field              │ Default                     │ Description                     │
//	├────────────────────┼─────────────────────────────┼─────────────────────────────────┤
//	│ Region             │ "us-east-1"                 │ AWS region                      │
//	│ InstanceType       │ "r5.xlarge"                 │ EC2 instance type               │
//	│ KeyPairName        │ "syslink-jenkins"           │ Key pair for new instances      │
//	│ SubnetID           │ "subnet-01e7368d67dc888c9"  │ Subnet of the network interface │
//	│ SecurityGroupIDs   │ two groups                  │ Groups of the network interface │
//	│ IAMInstanceProfile │ "ni-systemlink-ec2role-dev" │ Instance profile name           │
//	│ ImageCategory      │ "BaseImage"                 │ Category tag of the base AMI    │
//	│ PublicDNSSuffix    │ "aws.natinst.com"           │ Replaces ec2.internal           │
//	│ DirectConnectTags  │ CostCenter, Team, ...       │ Tags copied onto new instances  │
//	│ TerminationDays    │ 2                           │ Days until new instances expire │
//	└────────────────────┴─────────────────────────────┴─────────────────────────────────┘
//
// # Remote Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────────┐
//	│ Field            │ Default │ Description                                │
//	├──────────────────┼─────────┼────────────────────────────────────────────┤
//	│ SettleTime       │ 3s      │ Wait after submission before polling       │
//	│ PollInterval     │ 5s      │ Wait between polling cycles                │
//	│ SubmitRetryCount │ 60      │ Submission attempts                        │
//	│ SubmitBackoff    │ 60s     │ Wait between submission attempts           │
//	│ RunTimeBudget    │ 600s    │ Polling budget of one invocation           │
//	│ RunRetryCount    │ 3       │ Runs of a checked single command           │
//	│ RunCommandBudget │ 30s     │ Polling budget of a checked single command │
//	│ RunRetryDelay    │ 10s     │ Wait before re-running a checked command   │
//	└──────────────────┴─────────┴────────────────────────────────────────────┘
//
// # HTTP Configuration
//
//	┌────────────┬─────────┬──────────────────────────────────────┐
//	│ Field      │ Default │ Description                          │
//	├────────────┼─────────┼──────────────────────────────────────┤
//	│ RetryCount │ 60      │ Attempts for retryable status codes  │
//	│ RetryDelay │ 10s     │ Fixed delay between attempts         │
//	│ Timeout    │ 60s     │ Per-request timeout                  │
//	│ Debug      │ false   │ Log requests and responses           │
//	└────────────┴─────────┴──────────────────────────────────────┘
//
// # Installation Configuration
//
// Feeds are listed explicitly; every command template may reference the
// {name} and {uri} of a feed. One feed must contain PackageManagerFeedMarker
// ("package-manager") in its name, otherwise provisioning fails with a
// FeedMissingError.
//
// # Environment Overrides
//
// Every key can be overridden with an ATS_ variable named after its dotted
// path, e.g. ATS_AWS_REGION or ATS_TEST_MONITOR_PASSWORD. Overrides win over
// the file, which wins over the defaults.
//
// # Usage Example
//
//	cfg, err := config.Load("ats.yaml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
