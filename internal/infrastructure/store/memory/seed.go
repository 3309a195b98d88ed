package memory

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// Demo credentials: admin@example.com / admin123, user@example.com / user123.
// Every other seeded user gets the shared demo password.
const (
	adminPassword = "admin123"
	userPassword  = "user123"
	demoPassword  = "demo1234"
)

// SeedUsers returns the fixed user collection. Password hashes are computed
// at startup; this is demo data, not a credential store.
func SeedUsers() []domain.User {
	return []domain.User{
		{ID: "user_1", Name: "Admin User", Email: "admin@example.com", PasswordHash: mustHash(adminPassword), Role: domain.RoleAdmin, AccountID: "acc_1", AccountName: "Acme Inc", Status: domain.UserActive, CreatedAt: "2023-01-01"},
		{ID: "user_2", Name: "Regular User", Email: "user@example.com", PasswordHash: mustHash(userPassword), Role: domain.RoleUser, AccountID: "acc_1", AccountName: "Acme Inc", Status: domain.UserActive, CreatedAt: "2023-01-15"},
		{ID: "user_3", Name: "Jane Smith", Email: "jane@example.com", PasswordHash: mustHash(demoPassword), Role: domain.RoleUser, AccountID: "acc_2", AccountName: "Globex Corp", Status: domain.UserActive, CreatedAt: "2023-02-10"},
		{ID: "user_4", Name: "John Doe", Email: "john@example.com", PasswordHash: mustHash(demoPassword), Role: domain.RoleUser, AccountID: "acc_2", AccountName: "Globex Corp", Status: domain.UserInactive, CreatedAt: "2023-03-05"},
		{ID: "user_5", Name: "Sarah Johnson", Email: "sarah@example.com", PasswordHash: mustHash(demoPassword), Role: domain.RoleAdmin, AccountID: "acc_3", AccountName: "Initech", Status: domain.UserActive, CreatedAt: "2023-04-20"},
	}
}

// SeedAccounts returns the fixed account collection.
func SeedAccounts() []domain.Account {
	return []domain.Account{
		{ID: "acc_1", Name: "Acme Inc", Industry: "Technology", SubscriptionPlan: "Enterprise", Status: domain.AccountActive, UserCount: 25, CreatedAt: "2023-01-01"},
		{ID: "acc_2", Name: "Globex Corp", Industry: "Manufacturing", SubscriptionPlan: "Pro", Status: domain.AccountActive, UserCount: 12, CreatedAt: "2023-02-15"},
		{ID: "acc_3", Name: "Initech", Industry: "Finance", SubscriptionPlan: "Basic", Status: domain.AccountTrial, UserCount: 5, CreatedAt: "2023-03-10"},
		{ID: "acc_4", Name: "Umbrella Corp", Industry: "Healthcare", SubscriptionPlan: "Enterprise", Status: domain.AccountInactive, UserCount: 0, CreatedAt: "2023-01-20"},
	}
}

// SeedPlans returns the fixed subscription plan catalog.
func SeedPlans() []domain.SubscriptionPlan {
	return []domain.SubscriptionPlan{
		{ID: "plan_1", Name: "Basic", Description: "For individuals and small teams", Price: 9.99, BillingCycle: domain.BillingMonthly, Features: []string{"5 users", "10GB storage", "Basic support"}, Status: domain.PlanActive, CreatedAt: "2023-01-01"},
		{ID: "plan_2", Name: "Pro", Description: "For growing businesses", Price: 29.99, BillingCycle: domain.BillingMonthly, Features: []string{"20 users", "50GB storage", "Priority support", "Advanced analytics"}, IsPopular: true, Status: domain.PlanActive, CreatedAt: "2023-01-15"},
		{ID: "plan_3", Name: "Enterprise", Description: "For large organizations", Price: 99.99, BillingCycle: domain.BillingMonthly, Features: []string{"Unlimited users", "500GB storage", "24/7 support", "Custom integrations", "Dedicated account manager"}, Status: domain.PlanActive, CreatedAt: "2023-02-01"},
		{ID: "plan_4", Name: "Starter", Description: "For new users", Price: 4.99, BillingCycle: domain.BillingMonthly, Features: []string{"1 user", "5GB storage", "Email support"}, Status: domain.PlanDraft, CreatedAt: "2023-03-10"},
	}
}

// SeedMonthlyMetrics returns the fixed 2024 monthly series.
func SeedMonthlyMetrics() []domain.SubscriptionMetric {
	return []domain.SubscriptionMetric{
		{Month: "2024-01", NewSubscriptions: 45, CanceledSubscriptions: 8, TotalActive: 234, Revenue: 12450},
		{Month: "2024-02", NewSubscriptions: 52, CanceledSubscriptions: 12, TotalActive: 274, Revenue: 14680},
		{Month: "2024-03", NewSubscriptions: 38, CanceledSubscriptions: 15, TotalActive: 297, Revenue: 16230},
		{Month: "2024-04", NewSubscriptions: 61, CanceledSubscriptions: 9, TotalActive: 349, Revenue: 18940},
		{Month: "2024-05", NewSubscriptions: 43, CanceledSubscriptions: 18, TotalActive: 374, Revenue: 20150},
		{Month: "2024-06", NewSubscriptions: 55, CanceledSubscriptions: 11, TotalActive: 418, Revenue: 22780},
		{Month: "2024-07", NewSubscriptions: 67, CanceledSubscriptions: 14, TotalActive: 471, Revenue: 25340},
		{Month: "2024-08", NewSubscriptions: 49, CanceledSubscriptions: 22, TotalActive: 498, Revenue: 26890},
		{Month: "2024-09", NewSubscriptions: 58, CanceledSubscriptions: 16, TotalActive: 540, Revenue: 29120},
		{Month: "2024-10", NewSubscriptions: 72, CanceledSubscriptions: 19, TotalActive: 593, Revenue: 32450},
		{Month: "2024-11", NewSubscriptions: 64, CanceledSubscriptions: 13, TotalActive: 644, Revenue: 35680},
		{Month: "2024-12", NewSubscriptions: 81, CanceledSubscriptions: 25, TotalActive: 700, Revenue: 38920},
	}
}

// SeedChurnedUsers returns the fixed churn-event list.
func SeedChurnedUsers() []domain.ChurnedUser {
	return []domain.ChurnedUser{
		{ID: "user_1", Name: "John Smith", Email: "john.smith@example.com", AccountName: "Tech Solutions Inc", SubscriptionPlan: "Pro", ChurnDate: "2024-12-15", ChurnReason: "Price too high", LastLoginDate: "2024-12-10", TotalRevenue: 359.88},
		{ID: "user_2", Name: "Sarah Johnson", Email: "sarah.j@company.com", AccountName: "Marketing Agency", SubscriptionPlan: "Basic", ChurnDate: "2024-12-12", ChurnReason: "Switched to competitor", LastLoginDate: "2024-11-28", TotalRevenue: 119.88},
		{ID: "user_3", Name: "Mike Davis", Email: "mike.davis@startup.io", AccountName: "Startup Ventures", SubscriptionPlan: "Enterprise", ChurnDate: "2024-12-08", ChurnReason: "Budget constraints", LastLoginDate: "2024-12-05", TotalRevenue: 1199.88},
		{ID: "user_4", Name: "Emily Chen", Email: "emily.chen@design.co", AccountName: "Design Studio", SubscriptionPlan: "Pro", ChurnDate: "2024-12-05", ChurnReason: "Feature limitations", LastLoginDate: "2024-11-30", TotalRevenue: 299.88},
		{ID: "user_5", Name: "Robert Wilson", Email: "r.wilson@consulting.com", AccountName: "Wilson Consulting", SubscriptionPlan: "Basic", ChurnDate: "2024-12-01", ChurnReason: "No longer needed", LastLoginDate: "2024-11-25", TotalRevenue: 59.88},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic("seed: hash password: " + err.Error())
	}
	return string(hash)
}
