package analysis

import (
	"encoding/json"
	"fmt"
)

// System prompts for the four LLM calls of the refinement loop.
const (
	systemDraft = "You are a senior financial analyst with expertise in investment research. " +
		"Always provide detailed, evidence-based analysis in valid JSON format."

	systemEvaluate = "You are an experienced investment committee chair who balances thoroughness " +
		"with practical decision-making needs, recognizing that good investment decisions can be " +
		"made with reasonable analysis rather than perfect completeness."

	systemQueries = "You are an expert at crafting precise database queries to extract financial " +
		"information. Generate specific, targeted queries."

	systemRefine = "You are a senior financial analyst integrating new information to enhance " +
		"investment analysis. Maintain analytical rigor and update conclusions based on evidence."
)

const draftTemplate = `You are an expert financial analyst. Based on the provided document summaries, generate a comprehensive investment analysis for the following query:

INVESTMENT QUERY: %q

AVAILABLE DOCUMENTS WITH SUMMARIES:
%s

Provide a detailed analysis as a JSON object with exactly these keys:
1. "executiveSummary": 2-3 sentence overview of your recommendation
2. "financialAnalysis": assessment of financial health, trends, and key metrics
3. "investmentOpportunities": specific opportunities identified in the documents
4. "riskAssessment": key risks and concerns for this investment
5. "marketPosition": competitive position and market dynamics
6. "valuationInsights": valuation considerations and price context
7. "recommendation": Buy, Hold, or Sell with supporting rationale
8. "confidenceLevel": High, Medium, or Low
9. "dataGaps": information that would strengthen this analysis

Focus on actionable insights grounded in the available documents. Be specific about what documents inform each conclusion.`

const evaluateTemplate = `You are a senior investment committee member reviewing an analyst's report. Your job is to identify gaps, weaknesses, and areas that need more detailed investigation, while recognizing that practical investment decisions often need to be made with reasonable information rather than perfect completeness.

ORIGINAL INVESTMENT QUERY: %q

ANALYST'S REPORT:
%s

Evaluate the report and respond with a JSON object with exactly these keys:
1. "overallAssessment": Excellent, Good, Fair, or Poor
2. "completenessScore": integer from 1 to 10; consider that 7 or above indicates sufficient completeness for practical decision-making
3. "specificQuestions": concrete questions the report leaves unanswered
4. "missingAreas": analysis areas that are absent or underdeveloped
5. "dataNeeds": specific data points that would improve the analysis
6. "methodologyConcerns": weaknesses in the analytical approach
7. "actionability": High, Medium, or Low
8. "nextSteps": recommended follow-up investigations
9. "isAnalysisComplete": true if the analysis is sufficient for a decision

Be thorough but balanced. An analysis does not need to be perfect to be actionable.`

const queriesTemplate = `Based on the analysis evaluation, generate specific RAG database queries to fill the identified gaps.

ANALYSIS EVALUATION:
%s

AVAILABLE DOCUMENTS:
%s

Generate 3-5 specific, targeted queries. Each query should:
1. Be specific and actionable
2. Target information likely present in the available documents
3. Address the most critical gaps first
4. Include relevant company names and financial metrics

Provide the queries as a JSON array of strings, like:
["query 1", "query 2", "query 3"]`

const refineTemplate = `You are a senior financial analyst refining your investment analysis with additional detailed information from the document database.

ORIGINAL INVESTMENT QUERY: %q

ORIGINAL ANALYSIS:
%s

ADDITIONAL INFORMATION FROM RAG DATABASE:
%s

Please provide a refined and enhanced analysis in JSON format. Keep the same structure and keys as the original analysis:
1. Integrate the new information into the relevant sections
2. Update conclusions where the new evidence changes them
3. Strengthen areas the evaluation flagged as weak
4. Be more specific with metrics and figures where the new data allows
5. Update the confidence level to reflect the improved evidence base
6. Revise the recommendation if the new information warrants it

Maintain the same JSON structure with the same keys as the original analysis.`

// BuildDraftPrompt produces the initial-analysis prompt pair.
func BuildDraftPrompt(query, documents string) (system, user string) {
	return systemDraft, fmt.Sprintf(draftTemplate, query, documents)
}

// BuildEvaluatePrompt produces the critique prompt pair for the current
// analysis.
func BuildEvaluatePrompt(query string, current map[string]any) (system, user string) {
	return systemEvaluate, fmt.Sprintf(evaluateTemplate, query, indentJSON(current))
}

// BuildQueriesPrompt produces the gap-driven retrieval query prompt pair.
func BuildQueriesPrompt(evaluation any, documents string) (system, user string) {
	return systemQueries, fmt.Sprintf(queriesTemplate, indentJSON(evaluation), documents)
}

// BuildRefinePrompt produces the refinement prompt pair combining the current
// analysis with the formatted retrieval results.
func BuildRefinePrompt(query string, current map[string]any, ragContext string) (system, user string) {
	return systemRefine, fmt.Sprintf(refineTemplate, query, indentJSON(current), ragContext)
}

func indentJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
