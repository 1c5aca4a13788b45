package usecase

import (
	"context"
	"fmt"
	"strings"

	"novacart-support/internal/model"
	"novacart-support/internal/support"
	"novacart-support/internal/support/repository"
)

// AnswerFAQ answers a company/policy question from retrieved knowledge-base
// documents. The oracle only rephrases what retrieval found; no hits means
// an honest "don't have that" rather than a guess.
func (uc *implUseCase) AnswerFAQ(ctx context.Context, sc model.Scope, input support.HandlerInput) (support.HandlerOutput, error) {
	uc.l.Infof(ctx, "AnswerFAQ: user=%s query=%q", sc.UserID, input.UserText)

	docs, err := uc.faqRepo.SearchFAQ(ctx, repository.SearchFAQOptions{Query: input.UserText})
	if err != nil {
		return support.HandlerOutput{}, fmt.Errorf("failed to search documents: %w", err)
	}
	if len(docs) == 0 {
		return support.HandlerOutput{Reply: MsgFAQNoInfo}, nil
	}

	var refs strings.Builder
	for _, doc := range docs {
		refs.WriteString(doc.Text)
		refs.WriteString("\n")
	}

	answer, err := uc.oracle.Complete(ctx, fmt.Sprintf(PromptSummarizeFAQ, input.UserText, refs.String()))
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			uc.l.Warnf(ctx, "AnswerFAQ: oracle summarization failed: %v", err)
		}
		// degrade to the best raw snippet rather than failing the turn
		return support.HandlerOutput{Reply: "Here is what I found: " + strings.TrimSpace(docs[0].Text)}, nil
	}

	return support.HandlerOutput{Reply: strings.TrimSpace(answer)}, nil
}
