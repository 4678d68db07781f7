package config

const (
	// DefaultResultsDir is the directory searched for summary files when no path is given.
	DefaultResultsDir = "results"
	// DefaultSummarySuffix is the filename suffix k6 summary exports are written with.
	DefaultSummarySuffix = "_summary.json"
	// DefaultPricePerRequest is the serverless price charged per request, in dollars.
	DefaultPricePerRequest = 0.0000002
	// DefaultClusterMonthlyCost is the always-on cluster cost per month, in dollars.
	DefaultClusterMonthlyCost = 73.0
	// DefaultColdStartLowImpactPct is the cold-start rate below which cold starts count as low impact.
	DefaultColdStartLowImpactPct = 5.0
	// DefaultCandidateName is the display name of the serverless platform.
	DefaultCandidateName = "Azure Functions"
	// DefaultCandidateShort is the short label of the serverless platform.
	DefaultCandidateShort = "Functions"
	// DefaultCandidateTag is the k6 platform tag of the serverless platform.
	DefaultCandidateTag = "functions"
	// DefaultBaselineName is the display name of the container platform.
	DefaultBaselineName = "Kubernetes"
	// DefaultBaselineShort is the short label of the container platform.
	DefaultBaselineShort = "K8s"
	// DefaultBaselineTag is the k6 platform tag of the container platform.
	DefaultBaselineTag = "k8s"
	// MinutesPerMonth is the 30-day month the cluster cost is spread over.
	MinutesPerMonth = 30 * 24 * 60
)
