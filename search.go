package sift

import (
	"context"
	"fmt"
)

// PredicateSource is anything that yields a boolean WHERE fragment with
// positionally bound values. Both Filter and LegacyFilter implement it.
type PredicateSource interface {
	Predicate() (string, []any)
}

// preambler is the optional extension for sources that also produce a
// recursive-query preamble. Detected by interface assertion so LegacyFilter
// stays preamble-free.
type preambler interface {
	Preamble() (string, []any)
}

// Search runs the catalog listing for one compiled filter and returns the
// matching dashboard and folder uids ordered by uid. It exists for tooling
// and tests; applications with their own listing query should splice the
// predicate and preamble in themselves.
//
// The statement is assembled as preamble + listing + predicate, so the
// preamble's args bind first, then the org id, then the predicate's args.
func Search(ctx context.Context, q Querier, d Dialect, orgID int64, src PredicateSource) ([]string, error) {
	where, whereArgs := src.Predicate()

	var query string
	var args []any

	if p, ok := src.(preambler); ok {
		pre, preArgs := p.Preamble()
		query = pre
		args = append(args, preArgs...)
		if pre != "" {
			query += " "
		}
	}

	query += "SELECT dashboard.uid FROM dashboard WHERE dashboard.org_id = ?"
	args = append(args, orgID)
	if where != "" {
		query += " AND " + where
		args = append(args, whereArgs...)
	}
	query += " ORDER BY dashboard.uid"

	rows, err := q.QueryContext(ctx, d.Rebind(query), args...)
	if err != nil {
		if missingTableErr(err) {
			return nil, fmt.Errorf("%w: %v", ErrMissingCatalog, err)
		}
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var uids []string
	for rows.Next() {
		var uid string
		if err := rows.Scan(&uid); err != nil {
			return nil, err
		}
		uids = append(uids, uid)
	}

	return uids, rows.Err()
}
