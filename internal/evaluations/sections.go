package evaluations

import "slices"

// MinAnswerLength is the minimum trimmed character count of every narrative answer.
const MinAnswerLength = 50

// Question is one narrative prompt answered by the title officer.
type Question struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Instructions string `json:"instructions"`
}

// Section groups questions under one executive score.
type Section struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ScoreColumn string     `json:"score_column"`
	Questions   []Question `json:"questions"`
}

var sections = []Section{
	{
		Key:         "technical_competency",
		Title:       "Section I – Technical Title Competency",
		Description: "Assess your technical knowledge and expertise in title operations.",
		ScoreColumn: "score_technical_competency",
		Questions: []Question{
			{
				ID:           "q1_title_knowledge",
				Label:        "1. Title Knowledge & Expertise",
				Instructions: "Describe your current level of proficiency in title examination, underwriting guidelines, curative practices, and jurisdiction-specific issues. Identify areas of strength and areas requiring improvement. Include steps taken within the last year to enhance your technical knowledge.",
			},
			{
				ID:           "q2_risk_identification",
				Label:        "2. Risk Identification & Problem Resolution",
				Instructions: "Evaluate your effectiveness in identifying title defects, managing complex title issues, and resolving problems prior to closing. Cite examples of challenges, errors, or near-misses and what was learned from them.",
			},
		},
	},
	{
		Key:         "operational_performance",
		Title:       "Section II – Operational Performance",
		Description: "Evaluate your unit's operational efficiency and quality standards.",
		ScoreColumn: "score_operational_performance",
		Questions: []Question{
			{
				ID:           "q3_workload_management",
				Label:        "3. Workload Management & Turnaround Times",
				Instructions: "Assess how effectively your unit manages file volume, turnaround expectations, and priority transactions while maintaining accuracy. Identify recurring bottlenecks or inefficiencies.",
			},
			{
				ID:           "q4_process_consistency",
				Label:        "4. Process Consistency & Quality Control",
				Instructions: "Describe the systems, checks, or workflows in place to ensure consistent quality and minimize errors. Identify gaps or areas where controls could be strengthened.",
			},
		},
	},
	{
		Key:         "customer_communication",
		Title:       "Section III – Customer Interaction & Communication",
		Description: "Evaluate customer service and communication effectiveness.",
		ScoreColumn: "score_customer_communication",
		Questions: []Question{
			{
				ID:           "q5_customer_service",
				Label:        "5. Customer Service & Client Experience",
				Instructions: "Objectively evaluate your unit's responsiveness, professionalism, and clarity when interacting with customers, lenders, attorneys, and agents. Reference client feedback, trends, or service metrics where available.",
			},
			{
				ID:           "q6_internal_external_communication",
				Label:        "6. Internal & External Communication",
				Instructions: "Assess the effectiveness of communication within your unit and with other departments (escrow/closing, sales, underwriting). Identify instances where communication breakdowns affected outcomes.",
			},
		},
	},
	{
		Key:         "leadership",
		Title:       "Section IV – Leadership & Management",
		Description: "Evaluate leadership effectiveness and team development (if applicable).",
		ScoreColumn: "score_leadership",
		Questions: []Question{
			{
				ID:           "q7_team_leadership",
				Label:        "7. Team Leadership & Accountability",
				Instructions: "Evaluate your leadership approach, including delegation, accountability, and performance management. How do you address underperformance or behavioral issues?",
			},
			{
				ID:           "q8_training_succession",
				Label:        "8. Training, Cross-Training & Succession Risk",
				Instructions: "Describe how your unit trains new staff, develops existing team members, and mitigates key-person dependency risk.",
			},
		},
	},
	{
		Key:         "compliance",
		Title:       "Section V – Compliance & Judgment",
		Description: "Assess compliance practices and decision-making quality.",
		ScoreColumn: "score_compliance",
		Questions: []Question{
			{
				ID:           "q9_underwriting_compliance",
				Label:        "9. Underwriting, Compliance & Decision-Making",
				Instructions: "Assess your adherence to underwriting requirements, regulatory obligations, and company policies. Provide examples of high-risk or time-sensitive decisions and their outcomes.",
			},
		},
	},
	{
		Key:         "overall",
		Title:       "Section VI – Overall Assessment",
		Description: "Provide a comprehensive evaluation and improvement plan.",
		ScoreColumn: "score_overall",
		Questions: []Question{
			{
				ID:           "q10_overall_evaluation",
				Label:        "10. Overall Unit Evaluation & Improvement Plan",
				Instructions: "If evaluating your title unit as an underwriter or external auditor, identify core strengths, primary risks or vulnerabilities, and the top three operational or strategic improvements you would implement immediately.",
			},
		},
	},
}

var questions = func() []Question {
	var qs []Question
	for _, s := range sections {
		qs = append(qs, s.Questions...)
	}
	return qs
}()

// Sections returns the evaluation sections in form order.
func Sections() []Section {
	out := slices.Clone(sections)
	for i := range out {
		out[i].Questions = slices.Clone(out[i].Questions)
	}
	return out
}

// Questions returns all narrative questions in form order.
func Questions() []Question {
	return slices.Clone(questions)
}
