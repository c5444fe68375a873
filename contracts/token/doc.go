/*
Package token contains implementation of Token contract deployed to the
CivicAid chain.

Token contract is a NEP-17 fungible token used to reward citizens for
approved civic-issue reports. The Civic contract holds the reward pool on
its own token account and pays from it with regular transfers. Supply is
managed by the program authority through Mint and Burn.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification produced on
every token movement including mint (null sender) and burn (null receiver).

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This notification accompanies every Transfer and
additionally carries opaque transfer details, e.g. the report ID of a reward
payout.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray
*/
package token

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'authority' -> interop.Hash160
   program authority account
 - 'CirculationValue' -> int
   total amount of tokens in circulation
 - 'a<account>' -> int
   balance of the account, removed when it drops to zero
*/
