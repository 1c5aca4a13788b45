package usecase

// Oracle prompts. Each is a fmt template filled with the relevant turn data.
const (
	PromptExtractOrder = `You are an order assistant for an e-commerce platform.

User message:
"%s"

Extract:
- product name
- quantity (default to 1 if not mentioned)

If product is missing, set product to null.

Respond ONLY in JSON:
{
  "product": null or "<product name>",
  "quantity": <number>
}`

	PromptTrackExplanation = `You are a customer support assistant.

Order details:
- Order ID: %s
- Product: %s
- Quantity: %d
- Order Date: %s
- Status: %s
- Estimated Delivery Window: %s

Explain the order status clearly and reassuringly.
Mention the estimated delivery window.
Keep it short and friendly.`

	PromptExtractReturnReason = `You are a return assistant for an e-commerce platform.

User message:
"%s"

Order ID: %s

Task:
- Extract the return reason from the user's message.
- If no clear reason is mentioned, infer a generic reason like:
  "Customer requested return".

Respond with ONLY the return reason text.`

	PromptExtractIssue = `You are a customer support assistant.

User message:
"%s"

Task:
- Extract the customer's issue clearly.
- If the issue is unclear, return null.

Respond ONLY in JSON:
{
  "issue": null or "<issue description>"
}`

	PromptSummarizeFAQ = `You are NovaCart's AI customer support assistant.
Answer the customer's question ONLY using the reference information below.
Generate a concise, friendly answer.
If the answer is not present in the context, tell the user politely that this information is not available and stop.
Do NOT guess.

Rules:
- Do not answer from your own knowledge.
- Do not repeat the reference text verbatim, summarize it in a friendly way.
- Keep the answer under 2-3 lines.
- Do not mention that you are an AI model or the tools used.

User question:
%s

Information for reference (do NOT copy directly):
%s

Final answer to the customer:`
)

// Reply templates.
const (
	MsgAskProduct = "Sure 👍 Add the Product to your cart. \n\n" +
		"Example: *Order 2 wireless headphones*"

	MsgOrderPlaced = "🎉 **YOUR ORDER PLACED SUCCESSFULLY** 🎉\n\n" +
		"🆔 Order ID: %s\n" +
		"📦 Product: %s\n" +
		"🔢 Quantity: %d\n\n" +
		"You can track or return this order anytime."

	MsgOrderNotFound = "❌ I couldn't find any order with ID **%s** linked to your account."

	MsgTrackStatus = "📦 **STATUS OF YOUR ORDER**\n\n" +
		"🆔 Order ID: %s\n\n" +
		"🛍️ Product: %s\n\n" +
		"🔢 Quantity: %d\n\n" +
		"📅 Order Placed On: %s\n\n" +
		"📍 Status: **%s**\n\n" +
		"🚚 Estimated Delivery: **%s**\n\n%s"

	MsgTrackFallback = "Your order is currently **%s** and is expected to arrive between %s."

	MsgReturnNotFound = "❌ Order %s not found or does not belong to you."

	MsgReturnAlready = "ℹ️ A return request for **Order %s** has already been initiated.\n\n" +
		"Our team is currently processing it. You will be updated soon."

	MsgReturnRaised = "↩️ **Return Request Raised Successfully**\n\n" +
		"📦 Order ID: %s\n" +
		"📝 Reason: %s\n\n" +
		"Our team will process the return shortly."

	MsgTicketEscalated = "👤 **Your request has been escalated to a human support agent :**\n\n" +
		"🎫 Ticket Number: **%s**\n\n" +
		"🎫 **%s**\n\n" +
		"Our team will review the conversation and get back to you shortly.\n\n" +
		"In case you don't get a call back in next 12hrs.\n Please contact our customer support team :\n\n" +
		"📞 *Phone: +91 98765 43210 (8 AM - 10 PM IST)*\n" +
		"📧 *Email: support@novacart.in*\n"

	MsgTicketCreated = "🎫 **Support Ticket Created Successfully!**\n\n" +
		"🆔 Order ID: %s\n" +
		"🎫 Ticket Number: **%s**\n\n" +
		"📝 Issue: %s\n\n" +
		"Our support team will review your request and get back to you soon."

	MsgFAQNoInfo = "I'm sorry, I don't have that information right now."
)

// Fallback values when the oracle is unavailable or unparseable.
const (
	DefaultReturnReason = "Customer requested return"
	DefaultQuantity     = 1
)

// Delivery window in business days, counted from the order date.
const (
	deliveryWindowStart = 5
	deliveryWindowEnd   = 7
)

const orderDateLayout = "02 Jan 2006"

// minProductLen rejects oracle extractions too short to be a product name.
const minProductLen = 3

// minIssueLen rejects oracle issue extractions too short to be meaningful.
const minIssueLen = 5
