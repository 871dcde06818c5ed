/*
Package ddb converts raw DynamoDB items into records an identity map
can load. It is pure conversion: callers fetch items however they like
(query, stream, fixture), and this package turns the attribute maps
into record.Record values offline — the identity-map core itself never
touches the network.

	recs, err := ddb.RecordsFromItems(page.Items)
	if err != nil {
	    return err
	}
	if _, err := posts.Load(recs); err != nil {
	    return err
	}
*/
package ddb
