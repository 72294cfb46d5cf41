// Package foundry plans robot factories: given a price list for four kinds
// of robots, it finds how many geodes a factory can crack open in a fixed
// number of minutes, and scores whole batches of price lists in parallel.
//
// 🚀 What is inside?
//
//	blueprint/  — price lists, derived production caps, text and JSON parsers
//	search/     — exact branch-and-bound yield search over one blueprint
//	evaluate/   — worker pool computing the quality sum and the product
//	yieldcache/ — expiring cross-call cache of finished yields
//
//	cmd/foundry        — command-line harness
//	cmd/foundry-lambda — AWS Lambda Function URL handler
//
// ⚙️ Usage:
//
//	models, _ := blueprint.ParseAll(os.Stdin)
//	sum, _ := evaluate.QualitySum(ctx, models, 24)
//	prod, _ := evaluate.Product(ctx, models, 32, nil)
//
// Each search is single-threaded and deterministic; parallelism happens only
// across blueprints.
package foundry
