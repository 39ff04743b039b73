package services

// Services defined in this package:
// - AuthService: verifies the admin credential and issues session tokens
// - UserService: user collection snapshot + mutations
// - CategorieService: category collection snapshot + mutations
// - PaysService: country collection snapshot + mutations
// - CelluleService: cellule collection snapshot + mutations, leader checks
// - ActiviteService: listing collection snapshot + mutations, photo and
//   expertise sub-operations
//
// Every resource service follows the same contract: List refetches the
// full collection from the upstream API and falls back to the previous
// snapshot when the refetch fails; mutations never touch the snapshot
// optimistically and trigger exactly one refetch on success.
