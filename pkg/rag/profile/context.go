package profile

import (
	"fmt"
	"strings"
)

// profileContexts holds the descriptive paragraph injected into the prompt
// for each known profile.
var profileContexts = map[string]string{
	"doctor": `Healthcare professionals focused on:
- Patient outcomes and care quality
- Managing medical teams (residents, nurses)
- Clinical excellence and research
- Hospital administration and operations
- Board certification and advancement
- Balancing clinical work with leadership`,

	"hr_leader": `Human Resources leaders focused on:
- Talent acquisition and retention
- Employee development and engagement
- Organizational culture and change
- Performance management systems
- Strategic workforce planning
- Diversity, equity, and inclusion`,

	"entrepreneur": `Business founders focused on:
- Building and scaling businesses
- Product-market fit and growth
- Fundraising and investor relations
- Team building and leadership
- Customer acquisition and retention
- Managing limited resources effectively`,

	"corporate_executive": `Senior corporate leaders focused on:
- Strategic business decisions
- P&L management and growth
- Stakeholder management (board, investors)
- Organizational transformation
- Leading large teams (100+ people)
- Cross-functional collaboration`,

	"consultant": `Professional consultants focused on:
- Client engagement and delivery
- Problem-solving and recommendations
- Building credibility and expertise
- Managing multiple projects
- Thought leadership and positioning
- Business development`,

	"engineer": `Technical professionals focused on:
- Technical leadership and architecture
- Team management and mentoring
- Innovation and product development
- Balancing technical depth with leadership
- Cross-functional collaboration
- Strategic technology decisions`,

	"lawyer": `Legal professionals focused on:
- Case management and client service
- Legal strategy and advisory
- Team leadership and development
- Business development and partnerships
- Professional reputation
- Work-life balance in demanding field`,

	"educator": `Educational leaders focused on:
- Student outcomes and development
- Curriculum design and innovation
- Faculty/team management
- Institutional leadership
- Balancing teaching with administration
- Educational technology and methods`,

	"finance": `Financial professionals focused on:
- Financial planning and analysis
- Risk management and compliance
- Strategic financial decisions
- Investor relations and reporting
- Team leadership and development
- Business partnering with operations`,
}

// ContextFor returns the descriptive paragraph for a profile. Custom
// profiles get a generic leadership paragraph parameterized by the
// self-identified profession; unknown labels fall back to a one-liner.
func ContextFor(profileName, customProfile string) string {
	if ctx, ok := profileContexts[profileName]; ok {
		return ctx
	}

	if profileName == Custom && customProfile != "" {
		return fmt.Sprintf(`%s professional focused on:
- Professional excellence and leadership in their field
- Managing teams and stakeholders effectively
- Balancing technical/functional work with strategic leadership
- Career growth and board-level positioning
- Applying frameworks to their specific domain
- Achieving measurable business outcomes

Note: Adapt examples to this profession's context where relevant.`, titleCase(customProfile))
	}

	return "Professional focused on leadership and growth"
}

// PromptBlock renders the profile section of the user prompt. A nil
// detection yields the general-professional default.
func PromptBlock(det *Detection) string {
	if det == nil {
		return "USER PROFILE: General professional\nProvide general examples from the context."
	}

	if det.Profile == Custom {
		return fmt.Sprintf(`USER PROFILE DETECTED: %s
Profile Context: %s

IMPORTANT: Personalize examples for this profession while keeping the core framework intact!
If the profession is unfamiliar, provide examples that could apply broadly to professional leadership.`,
			strings.ToUpper(det.CustomProfile), ContextFor(det.Profile, det.CustomProfile))
	}

	return fmt.Sprintf(`USER PROFILE DETECTED: %s
Profile Context: %s

IMPORTANT: Personalize examples for this profile while keeping the core framework intact!`,
		strings.ToUpper(strings.ReplaceAll(det.Profile, "_", " ")), ContextFor(det.Profile, ""))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
