package derive

// Column names of the roster CSV export. Numeric columns default to zero when
// absent, so every formula below tolerates partial exports.
const (
	ColEmployeeID                = "Employee_ID"
	ColName                      = "name"
	ColCurrentRole               = "Current_Role"
	ColLevel                     = "Level"
	ColTenureMonths              = "Tenure_Months"
	ColUnassignedTasksPicked     = "Unassigned_Tasks_Picked"
	ColHelpRequestReplies        = "Help_Request_Replies"
	ColCrossTeamCollaborations   = "Cross_Team_Collaborations"
	ColCriticalIncidentOwnership = "Critical_Incident_Ownership"
	ColPeerReviewScore           = "Peer_Review_Score"
	ColArchitecturalChanges      = "Architectural_Changes"
	ColAvgTaskComplexity         = "Avg_Task_Complexity"
	ColTasksCompletedCount       = "Tasks_Completed_Count"
	ColLateNightCommits          = "Late_Night_Commits"
	ColWeekendActivityLog        = "Weekend_Activity_Log"
	ColVacationDaysUnused        = "Vacation_Days_Unused"
	ColSentimentTrend            = "Sentiment_Trend"
	ColRawAchievementLog         = "Raw_Achievement_Log"
	ColSkills                    = "skills"
	ColAvatar                    = "avatar"
)
