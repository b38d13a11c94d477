// Package shop contains the marketplace domain: categories, products
// with an approval workflow, carts and orders.
package shop
