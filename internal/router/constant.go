package router

// Log prefixes
const (
	LogPrefixRoute    = "internal.router.Route"
	LogPrefixClassify = "internal.router.classifyWithOracle"
)

// Escalation reasons, recorded on the session and consumed by the ticket
// handler within the same turn.
const (
	ReasonHumanRequested = "User Requested Human"
	ReasonUrgent         = "Urgent User Request"
	ReasonComplaint      = "Detected Complaint / Legal Issues"
)

// Escalation phrase sets, checked in priority order: explicit human
// request, then urgency, then complaint/legal. All phrases are stored
// lower-cased because matching runs against lowered input.
var (
	humanRequestPhrases = []string{
		"human", "agent", "real person", "talk to support",
		"frustrating", "not helpful", "frustrated", "this is useless",
		"escalate", "talk to human", "speak to human",
		"customer service", "call center", "supervisor", "manager",
		"human agent", "live agent", "representative",
		"customer support", "need help",
	}

	urgentPhrases = []string{
		"urgent", "emergency", "immediately", "asap", "right now",
		"critical", "very important", "need help now",
	}

	complaintPhrases = []string{
		"complaint", "complain", "worst", "terrible", "horrible",
		"scam", "fraud", "cheated", "consumer forum", "legal",
		"lawyer", "court", "sue", "police", "cyber crime",
	}
)

// Rule-based intent keyword sets, evaluated in this order; first match wins.
var (
	faqKeywords    = []string{"what", "who", "company", "policy"}
	trackKeywords  = []string{"track", "status"}
	returnKeywords = []string{"return", "send back"}
	ticketKeywords = []string{"ticket", "complaint", "not received", "issue", "problem"}
	orderKeywords  = []string{"place", "buy", "order"}
)

// User-facing messages for terminal turns.
const (
	MsgInvalidOrderIDFormat = "⚠️ That doesn't look like a valid order ID.\n" +
		"Correct format: **ORD-XXXXXX**, please check and try again."

	MsgProvideOrderIDTrack = "Please provide your ORDER ID to TRACK your order.\n\n" +
		"*FORMAT: Track ORD-XXXX*"

	MsgProvideOrderIDReturn = "Please provide your ORDER ID to RETURN your order.\n\n" +
		"*FORMAT: Return ORD-XXXX*"

	MsgProvideOrderIDTicket = "Please provide your ORDER ID and issue to RAISE a SUPPORT TICKET.\n\n" +
		"*FORMAT: Raise ticket for ORD-XXXX with ISSUE*"

	MsgOrderIDMenu = "I found your order ID **%s**.\n\n" +
		"*Please tell me exactly what you want me to do:*\n\n" +
		"• Track the %s\n\n" +
		"• Return the %s\n\n" +
		"• Raise a support ticket for %s with your concerns"

	MsgDescribeQuery = "I can't understand, can you please describe your query?"
)

// Oracle classification prompt. The label set is closed; anything else in
// the response maps to the FAQ handler.
const PromptIntentClassify = `Classify the user's intent into ONE of the following:
- place_order
- track_order
- return_order
- raise_ticket
- faq_llm

User message:
"%s"

Respond with ONLY the intent label.`

// Near-miss order ID guard: an all-alphanumeric input containing a digit
// and shorter than this length is treated as a malformed order ID attempt.
const nearMissMaxLen = 15
