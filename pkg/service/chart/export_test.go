package chart

var Bin = bin
