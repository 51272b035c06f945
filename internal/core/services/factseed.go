package services

import (
	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

// SeedFacts returns the static knowledge base: project types and PR types
// with their suggested features and analysis areas, feature and area
// descriptions, and the filename-pattern classification hints. The seed is
// loaded once at process start; facts added later are append-only and do
// not survive a restart.
func SeedFacts() []domain.Fact {
	return []domain.Fact{
		// Project type -> suggested features.
		{Relation: domain.RelationProjectFeature, Subject: "web_app", Value: "authentication"},
		{Relation: domain.RelationProjectFeature, Subject: "web_app", Value: "api_documentation"},
		{Relation: domain.RelationProjectFeature, Subject: "web_app", Value: "testing_framework"},
		{Relation: domain.RelationProjectFeature, Subject: "ai_ml", Value: "model_versioning"},
		{Relation: domain.RelationProjectFeature, Subject: "ai_ml", Value: "data_pipeline"},
		{Relation: domain.RelationProjectFeature, Subject: "ai_ml", Value: "experiment_tracking"},
		{Relation: domain.RelationProjectFeature, Subject: "mobile_app", Value: "push_notifications"},
		{Relation: domain.RelationProjectFeature, Subject: "mobile_app", Value: "offline_support"},
		{Relation: domain.RelationProjectFeature, Subject: "scraping", Value: "data_storage"},
		{Relation: domain.RelationProjectFeature, Subject: "scraping", Value: "scheduled_scraping"},
		{Relation: domain.RelationProjectFeature, Subject: "scraping", Value: "proxy_rotation"},
		{Relation: domain.RelationProjectFeature, Subject: "scraping", Value: "data_visualization"},
		{Relation: domain.RelationProjectFeature, Subject: "scraping", Value: "rate_limiting"},
		{Relation: domain.RelationProjectFeature, Subject: "scraping", Value: "error_handling"},
		{Relation: domain.RelationProjectFeature, Subject: "competitive_programming", Value: "solution_organization"},
		{Relation: domain.RelationProjectFeature, Subject: "competitive_programming", Value: "automated_testing"},
		{Relation: domain.RelationProjectFeature, Subject: "competitive_programming", Value: "complexity_analysis"},
		{Relation: domain.RelationProjectFeature, Subject: "documentation", Value: "search_functionality"},
		{Relation: domain.RelationProjectFeature, Subject: "documentation", Value: "content_organization"},
		{Relation: domain.RelationProjectFeature, Subject: "documentation", Value: "interactive_examples"},

		// Feature -> description.
		{Relation: domain.RelationFeatureDescription, Subject: "authentication", Value: "User authentication and authorization system with login/logout functionality"},
		{Relation: domain.RelationFeatureDescription, Subject: "api_documentation", Value: "Interactive API documentation using Swagger/OpenAPI for better developer experience"},
		{Relation: domain.RelationFeatureDescription, Subject: "testing_framework", Value: "Comprehensive testing suite with unit, integration, and end-to-end tests"},
		{Relation: domain.RelationFeatureDescription, Subject: "model_versioning", Value: "ML model versioning system for tracking experiments and model rollbacks"},
		{Relation: domain.RelationFeatureDescription, Subject: "data_pipeline", Value: "Automated data processing pipeline for ETL operations and data validation"},
		{Relation: domain.RelationFeatureDescription, Subject: "experiment_tracking", Value: "ML experiment tracking system to monitor model performance and metrics"},
		{Relation: domain.RelationFeatureDescription, Subject: "push_notifications", Value: "Push notification system for real-time user engagement and updates"},
		{Relation: domain.RelationFeatureDescription, Subject: "offline_support", Value: "Offline functionality support for seamless user experience without internet"},
		{Relation: domain.RelationFeatureDescription, Subject: "data_storage", Value: "Persistent data storage with database integration for scraped data management"},
		{Relation: domain.RelationFeatureDescription, Subject: "scheduled_scraping", Value: "Automated scheduling system for regular data collection with cron jobs"},
		{Relation: domain.RelationFeatureDescription, Subject: "proxy_rotation", Value: "Proxy rotation system to avoid IP blocking and ensure continuous scraping"},
		{Relation: domain.RelationFeatureDescription, Subject: "data_visualization", Value: "Interactive dashboards and charts to visualize scraped data trends"},
		{Relation: domain.RelationFeatureDescription, Subject: "rate_limiting", Value: "Smart rate limiting to respect website policies and avoid detection"},
		{Relation: domain.RelationFeatureDescription, Subject: "error_handling", Value: "Robust error handling with retry mechanisms and failure notifications"},
		{Relation: domain.RelationFeatureDescription, Subject: "solution_organization", Value: "Organize solutions by problem difficulty, topic, and platform with clear folder structure"},
		{Relation: domain.RelationFeatureDescription, Subject: "automated_testing", Value: "Automated test cases to verify solution correctness with multiple test inputs"},
		{Relation: domain.RelationFeatureDescription, Subject: "complexity_analysis", Value: "Time and space complexity analysis documentation for each solution"},
		{Relation: domain.RelationFeatureDescription, Subject: "search_functionality", Value: "Advanced search with filters for programming languages, topics, and difficulty"},
		{Relation: domain.RelationFeatureDescription, Subject: "content_organization", Value: "Hierarchical content organization with categories and tagging system"},
		{Relation: domain.RelationFeatureDescription, Subject: "interactive_examples", Value: "Interactive code examples with live execution and editing capabilities"},
		{Relation: domain.RelationFeatureDescription, Subject: "ci_cd_pipeline", Value: "Continuous Integration/Continuous Deployment pipeline for automated testing and deployment"},
		{Relation: domain.RelationFeatureDescription, Subject: "monitoring_dashboard", Value: "Real-time monitoring dashboard for system health and performance metrics"},

		// PR type -> analysis focus areas.
		{Relation: domain.RelationPRAnalysis, Subject: "feature", Value: "functionality_review"},
		{Relation: domain.RelationPRAnalysis, Subject: "feature", Value: "code_quality_check"},
		{Relation: domain.RelationPRAnalysis, Subject: "feature", Value: "test_coverage"},
		{Relation: domain.RelationPRAnalysis, Subject: "feature", Value: "documentation_update"},
		{Relation: domain.RelationPRAnalysis, Subject: "bugfix", Value: "root_cause_analysis"},
		{Relation: domain.RelationPRAnalysis, Subject: "bugfix", Value: "regression_testing"},
		{Relation: domain.RelationPRAnalysis, Subject: "bugfix", Value: "edge_case_handling"},
		{Relation: domain.RelationPRAnalysis, Subject: "refactor", Value: "code_structure_improvement"},
		{Relation: domain.RelationPRAnalysis, Subject: "refactor", Value: "performance_impact"},
		{Relation: domain.RelationPRAnalysis, Subject: "refactor", Value: "maintainability_check"},
		{Relation: domain.RelationPRAnalysis, Subject: "docs", Value: "content_clarity"},
		{Relation: domain.RelationPRAnalysis, Subject: "docs", Value: "technical_accuracy"},
		{Relation: domain.RelationPRAnalysis, Subject: "docs", Value: "completeness_check"},
		{Relation: domain.RelationPRAnalysis, Subject: "security", Value: "vulnerability_assessment"},
		{Relation: domain.RelationPRAnalysis, Subject: "security", Value: "security_best_practices"},
		{Relation: domain.RelationPRAnalysis, Subject: "security", Value: "access_control_review"},
		{Relation: domain.RelationPRAnalysis, Subject: "performance", Value: "benchmark_analysis"},
		{Relation: domain.RelationPRAnalysis, Subject: "performance", Value: "resource_usage"},
		{Relation: domain.RelationPRAnalysis, Subject: "performance", Value: "scalability_impact"},

		// Analysis area -> description.
		{Relation: domain.RelationAnalysisDescription, Subject: "functionality_review", Value: "Review the new functionality for correctness and completeness"},
		{Relation: domain.RelationAnalysisDescription, Subject: "code_quality_check", Value: "Assess code quality, readability, and adherence to standards"},
		{Relation: domain.RelationAnalysisDescription, Subject: "test_coverage", Value: "Verify adequate test coverage for new functionality"},
		{Relation: domain.RelationAnalysisDescription, Subject: "documentation_update", Value: "Check if documentation is updated for new features"},
		{Relation: domain.RelationAnalysisDescription, Subject: "root_cause_analysis", Value: "Analyze if the root cause of the bug is properly addressed"},
		{Relation: domain.RelationAnalysisDescription, Subject: "regression_testing", Value: "Ensure the fix doesn't introduce new issues"},
		{Relation: domain.RelationAnalysisDescription, Subject: "edge_case_handling", Value: "Verify edge cases and error conditions are handled"},
		{Relation: domain.RelationAnalysisDescription, Subject: "code_structure_improvement", Value: "Evaluate improvements in code organization and structure"},
		{Relation: domain.RelationAnalysisDescription, Subject: "performance_impact", Value: "Assess potential performance implications of refactoring"},
		{Relation: domain.RelationAnalysisDescription, Subject: "maintainability_check", Value: "Review how changes improve code maintainability"},
		{Relation: domain.RelationAnalysisDescription, Subject: "content_clarity", Value: "Check documentation clarity and understandability"},
		{Relation: domain.RelationAnalysisDescription, Subject: "technical_accuracy", Value: "Verify technical accuracy of documentation changes"},
		{Relation: domain.RelationAnalysisDescription, Subject: "completeness_check", Value: "Ensure documentation covers all necessary aspects"},
		{Relation: domain.RelationAnalysisDescription, Subject: "vulnerability_assessment", Value: "Assess potential security vulnerabilities in changes"},
		{Relation: domain.RelationAnalysisDescription, Subject: "security_best_practices", Value: "Verify adherence to security best practices"},
		{Relation: domain.RelationAnalysisDescription, Subject: "access_control_review", Value: "Review access control and permission changes"},
		{Relation: domain.RelationAnalysisDescription, Subject: "benchmark_analysis", Value: "Analyze performance benchmarks and improvements"},
		{Relation: domain.RelationAnalysisDescription, Subject: "resource_usage", Value: "Review resource usage implications of changes"},
		{Relation: domain.RelationAnalysisDescription, Subject: "scalability_impact", Value: "Assess impact on system scalability"},

		// Filename pattern -> PR type.
		{Relation: domain.RelationFilePattern, Subject: "test", Value: "feature"},
		{Relation: domain.RelationFilePattern, Subject: "spec", Value: "feature"},
		{Relation: domain.RelationFilePattern, Subject: "readme", Value: "docs"},
		{Relation: domain.RelationFilePattern, Subject: "doc", Value: "docs"},
		{Relation: domain.RelationFilePattern, Subject: "security", Value: "security"},
		{Relation: domain.RelationFilePattern, Subject: "auth", Value: "security"},
		{Relation: domain.RelationFilePattern, Subject: "perf", Value: "performance"},
		{Relation: domain.RelationFilePattern, Subject: "benchmark", Value: "performance"},
	}
}
