package enrich

import (
	"fmt"

	"github.com/de-tools/compliance-atlas/pkg/models/domain"
	"github.com/spf13/viper"
)

// Settings contains the scoring tables and report knobs. The zero value is
// not usable; start from DefaultSettings and override via LoadSettings.
type Settings struct {
	// PriorityImpact is the base score contributed by a priority class.
	PriorityImpact map[domain.Priority]float64 `mapstructure:"priority_impact"`
	// StatusMultiplier scales the impact by the current control status.
	StatusMultiplier map[domain.Status]float64 `mapstructure:"status_multiplier"`
	// DefaultStatusMultiplier applies to statuses absent from StatusMultiplier.
	DefaultStatusMultiplier float64 `mapstructure:"default_status_multiplier"`
	// ServiceCriticality weights categories for report presentation.
	ServiceCriticality map[string]float64 `mapstructure:"service_criticality"`
	// PriorityColors maps priorities to hex colors used by charts and sheets.
	PriorityColors map[domain.Priority]string `mapstructure:"priority_colors"`
	// Categories maps report sections to the service titles they cover.
	Categories []Category `mapstructure:"categories"`
	// TopN is the size of the high-risk-services and recommendations rankings.
	TopN int `mapstructure:"top_n"`
	// RiskThreshold excludes services at or below this cumulative score from
	// the high-risk ranking.
	RiskThreshold float64 `mapstructure:"risk_threshold"`
	// OutputDir is where workbooks, JSON summaries and charts are written.
	OutputDir string `mapstructure:"output_dir"`
}

// Category is one report section with its fixed service list. Order matters:
// categories are emitted in declaration order.
type Category struct {
	Name     string   `mapstructure:"name"`
	Services []string `mapstructure:"services"`
}

// DefaultSettings returns the built-in scoring configuration.
func DefaultSettings() Settings {
	return Settings{
		PriorityImpact: map[domain.Priority]float64{
			domain.PriorityHigh: 10,
			domain.PriorityMed:  5,
			domain.PriorityLow:  2,
			domain.PrioritySafe: 0,
		},
		StatusMultiplier: map[domain.Status]float64{
			domain.StatusAlarm: 1.5,
			domain.StatusOK:    0.1,
			domain.StatusInfo:  0.2,
			domain.StatusSkip:  0.1,
		},
		DefaultStatusMultiplier: 1.0,
		ServiceCriticality: map[string]float64{
			"Security and Identity": 1.5,
			"Compute":               1.3,
			"Database":              1.4,
			"Network":               1.2,
			"Storage":               1.1,
			"Other":                 1.0,
		},
		PriorityColors: map[domain.Priority]string{
			domain.PriorityHigh: "#FF0000",
			domain.PriorityMed:  "#FFA500",
			domain.PriorityLow:  "#FFFF00",
			domain.PrioritySafe: "#00FF00",
			domain.PriorityNone: "#C0C0C0",
		},
		Categories: []Category{
			{Name: "Security and Identity", Services: []string{"IAM", "ACM", "KMS", "GuardDuty", "Secret Manager", "Secret Hub", "SSM"}},
			{Name: "Compute", Services: []string{"Auto Scaling", "EC2", "ECS", "EKS", "Lambda", "EMR", "Step Functions"}},
			{Name: "Storage", Services: []string{"EBS", "ECR", "S3", "DLM", "Backup"}},
			{Name: "Network", Services: []string{"API Gateway", "CloudFront", "Route 53", "VPC", "ELB", "ElasticCache", "CloudTrail"}},
			{Name: "Database", Services: []string{"RDS", "DynamoDB", "Athena", "Glue"}},
			{Name: "Other", Services: []string{"CloudFormation", "CodeDeploy", "Config", "SNS", "SQS", "WorkSpaces", "EventBridge"}},
		},
		TopN:          5,
		RiskThreshold: 5,
		OutputDir:     "compliance_reports",
	}
}

// LoadSettings reads overrides from the given settings file on top of the
// defaults. An empty path returns the defaults untouched.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}
