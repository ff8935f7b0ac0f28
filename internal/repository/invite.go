package repository

import (
	"context"
	"fmt"
	"time"

	"moonradar/internal/model"

	"github.com/Masterminds/squirrel"
)

type invite struct {
	ID           int64     `db:"id"`
	InviterID    int64     `db:"inviter_id"`
	InviteeEmail string    `db:"invitee_email"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

func (i *invite) toModel() *model.Invite {
	return &model.Invite{
		ID:           i.ID,
		InviterID:    i.InviterID,
		InviteeEmail: i.InviteeEmail,
		Status:       model.InviteStatus(i.Status),
		CreatedAt:    i.CreatedAt,
	}
}

func (r *Repository) CreateInvite(ctx context.Context, inv *model.Invite) error {
	query, args, err := squirrel.
		Insert("invites").
		SetMap(map[string]interface{}{
			"inviter_id":    inv.InviterID,
			"invitee_email": inv.InviteeEmail,
			"status":        string(inv.Status),
			"created_at":    inv.CreatedAt,
		}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build invite insert query: %w", err)
	}

	err = r.db.GetContext(ctx, &inv.ID, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert invite: %w", err)
	}

	return nil
}

func (r *Repository) ListInvitesByInviter(ctx context.Context, inviterID int64) ([]*model.Invite, error) {
	query, args, err := squirrel.
		Select("*").
		From("invites").
		Where(squirrel.Eq{"inviter_id": inviterID}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var invites []*invite
	err = r.db.SelectContext(ctx, &invites, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get invites: %w", err)
	}

	out := make([]*model.Invite, len(invites))
	for i, inv := range invites {
		out[i] = inv.toModel()
	}

	return out, nil
}

// MarkInviteAccepted flips the inviter's pending invite for the given
// email to accepted. Missing invites are not an error: registering with
// a referral code does not require a recorded invite.
func (r *Repository) MarkInviteAccepted(ctx context.Context, inviterID int64, inviteeEmail string) error {
	query, args, err := squirrel.
		Update("invites").
		Set("status", string(model.InviteStatusAccepted)).
		Where(squirrel.Eq{
			"inviter_id":    inviterID,
			"invitee_email": inviteeEmail,
			"status":        string(model.InviteStatusPending),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build invite update query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark invite accepted: %w", err)
	}

	return nil
}
