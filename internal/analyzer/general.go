package analyzer

const generalTitle = "GENERAL COST OPTIMIZATION RECOMMENDATIONS"

// GeneralRecommendations returns the ten standing recommendations that close
// every report. No data dependency.
func GeneralRecommendations() Section {
	return Section{
		Title: generalTitle,
		Parts: []Part{{
			Name:   "general",
			Status: StatusStatic,
			Lines: []string{
				"1. Resource Rightsizing:",
				"   - Regularly review and rightsize your resources based on actual usage patterns",
				"   - Use GCP's Recommender API to get automatic rightsizing recommendations",
				"",
				"2. Committed Use Discounts:",
				"   - Purchase committed use contracts for steady-state workloads to save up to 57%",
				"   - Analyze your usage patterns to determine optimal commitment levels",
				"",
				"3. Sustained Use Discounts:",
				"   - GCP automatically applies sustained use discounts for resources used for significant portions of the month",
				"   - Consolidate workloads to maximize these discounts",
				"",
				"4. Preemptible VMs:",
				"   - Use preemptible VMs for fault-tolerant, batch processing workloads to save up to 80%",
				"   - Ensure your applications can handle interruptions",
				"",
				"5. Storage Optimization:",
				"   - Use appropriate storage classes based on access frequency",
				"   - Implement lifecycle policies to automatically transition objects to cheaper storage classes",
				"   - Delete unnecessary snapshots and unattached persistent disks",
				"",
				"6. Networking Optimization:",
				"   - Avoid using external IPs for internal communication",
				"   - Use Cloud NAT for outbound traffic instead of assigning external IPs to each instance",
				"   - Delete unused static external IPs",
				"",
				"7. Budgets and Alerts:",
				"   - Set up budget alerts to notify you when spending approaches predefined thresholds",
				"   - Use GCP's Cost Explorer to identify cost trends and anomalies",
				"",
				"8. Scheduled Resources:",
				"   - Schedule non-production resources to shut down during off-hours",
				"   - Use Cloud Scheduler and Cloud Functions to automate resource management",
				"",
				"9. Containerization:",
				"   - Consider using Google Kubernetes Engine (GKE) to optimize resource utilization",
				"   - Use GKE Autopilot to let Google manage capacity provisioning",
				"",
				"10. Billing Export:",
				"    - Export billing data to BigQuery for detailed analysis",
				"    - Create custom dashboards to track spending by project, service, and label",
			},
		}},
	}
}
