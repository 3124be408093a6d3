package analyzer

const billingTitle = "BILLING OPTIMIZATION RECOMMENDATIONS"

// BillingAdvice returns the billing section. It has no data dependency and
// is included in every report.
func BillingAdvice() Section {
	return Section{
		Title: billingTitle,
		Parts: []Part{{
			Name:   "billing",
			Status: StatusStatic,
			Lines: []string{
				"1. Set up Budget Alerts:",
				"   - Create budget alerts to notify you when spending approaches predefined thresholds",
				"   - Use the following command to create a budget alert:",
				"     gcloud billing budgets create --billing-account=ACCOUNT_ID --display-name=BUDGET_NAME --budget-amount=1000USD --threshold-rules=percent=80",
				"",
				"2. Export Billing Data to BigQuery:",
				"   - Export your billing data to BigQuery for detailed analysis",
				"   - Create custom dashboards to track spending by project, service, and label",
				"   - Use Data Studio to visualize your spending patterns",
				"",
				"3. Use Labels for Cost Allocation:",
				"   - Apply consistent labels to all resources for better cost tracking",
				"   - Example labels: environment (prod, dev, test), team, project, application",
			},
		}},
	}
}
