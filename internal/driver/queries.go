package driver

var IndexQueries = []string{
	"CREATE INDEX ON :Recommendation(uuid);",
	"CREATE INDEX ON :Recommendation(created_at);",
	"CREATE INDEX ON :Customer(canonical);",
}

const (
	SaveRecommendationQuery = `
		MERGE (r:Recommendation {uuid: $uuid})
		SET r.question = $question,
			r.initial = $initial,
			r.revised = $revised,
			r.created_at = $created_at
		RETURN r.uuid AS uuid
	`

	SaveCustomerQuery = `
		MERGE (c:Customer {canonical: $canonical})
		SET c.name = $name
		RETURN c.canonical AS canonical
	`

	// turn is 1 for the initial recommendation and 2 for the revisit.
	SaveMentionQuery = `
		MATCH (r:Recommendation {uuid: $uuid})
		MATCH (c:Customer {canonical: $canonical})
		MERGE (r)-[m:MENTIONS {turn: $turn}]->(c)
		SET m.position = $position
		RETURN r.uuid AS uuid
	`

	SaveAddedQuery = `
		MATCH (r:Recommendation {uuid: $uuid})
		MATCH (c:Customer {canonical: $canonical})
		MERGE (r)-[:ADDED]->(c)
		RETURN r.uuid AS uuid
	`

	SaveRemovedQuery = `
		MATCH (r:Recommendation {uuid: $uuid})
		MATCH (c:Customer {canonical: $canonical})
		MERGE (r)-[:REMOVED]->(c)
		RETURN r.uuid AS uuid
	`

	GetRecentRecommendationsQuery = `
		MATCH (r:Recommendation)
		OPTIONAL MATCH (r)-[:ADDED]->(a:Customer)
		WITH r, collect(a.name) AS added
		OPTIONAL MATCH (r)-[:REMOVED]->(d:Customer)
		WITH r, added, collect(d.name) AS removed
		RETURN r.uuid AS uuid, r.question AS question, r.created_at AS created_at, added, removed
		ORDER BY created_at DESC
		LIMIT $limit
	`
)
